package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
	log        *slog.Logger
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		log:        logger.WithService("client"),
	}
}

func (s *clientService) Register(ctx context.Context, client *domain.Client) error {
	if client == nil {
		return errors.Wrap(domain.ErrInvalidArgument, "client must not be nil")
	}
	if strings.TrimSpace(client.Name) == "" {
		return errors.Wrap(domain.ErrInvalidArgument, "client name is required")
	}
	if strings.TrimSpace(client.Document) == "" {
		return errors.Wrap(domain.ErrInvalidArgument, "client document is required")
	}
	if client.Kind == domain.ClientKindIndividual && strings.ContainsAny(client.Name, "0123456789") {
		return errors.Wrap(domain.ErrInvalidArgument, "individual name must not contain digits")
	}
	if err := client.Kind.ValidateDocument(client.Document); err != nil {
		return err
	}

	if _, err := s.clientRepo.GetByDocument(ctx, client.Document); err == nil {
		return errors.Wrapf(domain.ErrConflict, "document %s already registered", client.Document)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return err
	}
	s.log.Info("Client registered", "document", client.Document, "kind", string(client.Kind))
	return nil
}

func (s *clientService) GetByDocument(ctx context.Context, document string) (*domain.Client, error) {
	if strings.TrimSpace(document) == "" {
		return nil, errors.Wrap(domain.ErrInvalidArgument, "document is required")
	}
	return s.clientRepo.GetByDocument(ctx, document)
}

func (s *clientService) SearchByName(ctx context.Context, term string) ([]*domain.Client, error) {
	t := strings.ToLower(term)
	return s.clientRepo.Filter(ctx, func(c *domain.Client) bool {
		return strings.Contains(strings.ToLower(c.Name), t)
	})
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) Remove(ctx context.Context, document string) error {
	return s.clientRepo.Remove(ctx, document)
}

func (s *clientService) Exists(ctx context.Context, document string) (bool, error) {
	_, err := s.clientRepo.GetByDocument(ctx, document)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
