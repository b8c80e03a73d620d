package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"

	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	IDProofType   string `json:"id_proof_type"`
	IDProofNumber string `json:"id_proof_number"`
}

// CustomerService defines the guest-record contract.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	History(ctx context.Context, id uuid.UUID) (*domain.CustomerHistory, error)
	AttachPhoto(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*domain.Customer, error)
	PhotoURL(ctx context.Context, id uuid.UUID) (string, error)
}

// allowedPhotoTypes maps accepted photo extensions to content types.
var allowedPhotoTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type customerService struct {
	customerRepo port.CustomerRepository
	bookingRepo  port.BookingRepository
	billRepo     port.BillRepository
	storage      port.ObjectStorage
	s3cfg        *config.S3Config
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(
	customerRepo port.CustomerRepository,
	bookingRepo port.BookingRepository,
	billRepo port.BillRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		billRepo:     billRepo,
		storage:      storage,
		s3cfg:        s3cfg,
	}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		FullName:      strings.TrimSpace(input.FullName),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Address:       input.Address,
		IDProofType:   input.IDProofType,
		IDProofNumber: input.IDProofNumber,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	return s.customerRepo.List(ctx, search, offset, limit)
}

// History assembles the customer's bookings and bills plus summary stats.
func (s *customerService) History(ctx context.Context, id uuid.UUID) (*domain.CustomerHistory, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	bills, err := s.billRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	history := &domain.CustomerHistory{
		Customer: customer,
		Bookings: bookings,
		Bills:    bills,
	}
	for i := range bookings {
		b := &bookings[i]
		if b.Status == domain.BookingCancelled {
			continue
		}
		history.TotalStays++
		history.TotalNights += b.Nights
		if history.LastStay == nil || b.CheckIn.After(*history.LastStay) {
			checkIn := b.CheckIn
			history.LastStay = &checkIn
		}
	}
	for i := range bills {
		if bills[i].Status.Finalized() {
			history.TotalSpent += bills[i].TotalAmount
		}
	}
	return history, nil
}

func (s *customerService) AttachPhoto(ctx context.Context, id uuid.UUID, file multipart.File, header *multipart.FileHeader) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(header.Filename))
	contentType, ok := allowedPhotoTypes[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if header.Size > s.s3cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	key := fmt.Sprintf("customers/%s/%s%s", id, uuid.New(), ext)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        file,
		ContentType: contentType,
	})
	if err != nil {
		return nil, domain.ErrUploadFailed
	}

	if err := s.customerRepo.SetPhotoKey(ctx, id, key); err != nil {
		return nil, err
	}
	customer.PhotoKey = key
	return customer, nil
}

func (s *customerService) PhotoURL(ctx context.Context, id uuid.UUID) (string, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if customer.PhotoKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, customer.PhotoKey, s.s3cfg.PresignExpiry)
}
