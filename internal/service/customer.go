package service

import (
	"context"

	"bridal-backend/internal/cache"
	"bridal-backend/internal/domain"
	"bridal-backend/internal/logger"
	"bridal-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	snapshot     *cache.Snapshot
}

func NewCustomerService(customerRepo repository.CustomerRepository, snapshot *cache.Snapshot) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		snapshot:     snapshot,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return err
	}
	s.snapshot.UpsertCustomer(*c)
	logger.WithService("customer").InfoContext(ctx, "customer created", "id", c.ID)
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return err
	}
	s.snapshot.UpsertCustomer(*c)
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshot.RemoveCustomer(id)
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, query, page, pageSize)
}
