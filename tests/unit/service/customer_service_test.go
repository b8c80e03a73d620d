package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "ap-south-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 5,
		PresignExpiry: 3600,
	}
}

func photoFixtures() (*mocks.MockCustomerRepo, *mocks.MockObjectStorage, service.CustomerService) {
	customerRepo := new(mocks.MockCustomerRepo)
	bookingRepo := new(mocks.MockBookingRepo)
	billRepo := new(mocks.MockBillRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewCustomerService(customerRepo, bookingRepo, billRepo, storage, &cfg)
	return customerRepo, storage, svc
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(t *testing.T, filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content) + 1024))
	require.NoError(t, err)
	file, err := form.File["file"][0].Open()
	require.NoError(t, err)
	return file, form.File["file"][0]
}

func jpegContent() []byte {
	header := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func TestCustomerService_AttachPhoto_Success(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)

	file, header := createMultipartFile(t, "id-proof.jpg", jpegContent(), "image/jpeg")
	defer file.Close()

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" &&
			strings.HasPrefix(in.Key, "customers/"+customerID.String()+"/") &&
			strings.HasSuffix(in.Key, ".jpg") &&
			in.ContentType == "image/jpeg"
	})).Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/test", ETag: "abc"}, nil)
	customerRepo.On("SetPhotoKey", mock.Anything, customerID, mock.AnythingOfType("string")).Return(nil)

	customer, err := svc.AttachPhoto(context.Background(), customerID, file, header)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(customer.PhotoKey, "customers/"))
	customerRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestCustomerService_AttachPhoto_UnsupportedType(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)

	file, header := createMultipartFile(t, "id-proof.pdf", []byte("%PDF-1.4"), "application/pdf")
	defer file.Close()

	_, err := svc.AttachPhoto(context.Background(), customerID, file, header)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestCustomerService_AttachPhoto_TooLarge(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)

	file, header := createMultipartFile(t, "huge.jpg", jpegContent(), "image/jpeg")
	defer file.Close()
	header.Size = 6 * 1024 * 1024 // over the 5MB limit

	_, err := svc.AttachPhoto(context.Background(), customerID, file, header)

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestCustomerService_AttachPhoto_UploadFailure(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)

	file, header := createMultipartFile(t, "id-proof.png", jpegContent(), "image/png")
	defer file.Close()

	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.AttachPhoto(context.Background(), customerID, file, header)

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	customerRepo.AssertNotCalled(t, "SetPhotoKey", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_PhotoURL(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{
		ID:       customerID,
		PhotoKey: "customers/abc/photo.jpg",
	}, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", "customers/abc/photo.jpg", int64(3600)).
		Return("https://signed.example/photo.jpg", nil)

	url, err := svc.PhotoURL(context.Background(), customerID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/photo.jpg", url)
}

func TestCustomerService_PhotoURL_NoPhoto(t *testing.T) {
	customerRepo, storage, svc := photoFixtures()

	customerID := uuid.New()
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{ID: customerID}, nil)

	_, err := svc.PhotoURL(context.Background(), customerID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
