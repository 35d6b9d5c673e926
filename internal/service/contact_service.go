package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"venuebook/internal/auditlog"
	"venuebook/internal/model"
	"venuebook/internal/repository"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// ContactUpdate holds the fields an admin may change on an inquiry.
type ContactUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject" validate:"omitempty,min=1"`
	Message *string `json:"message" validate:"omitempty,min=1"`
	Status  *string `json:"status" validate:"omitempty,min=1"`
}

func (u ContactUpdate) columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "name", u.Name)
	setString(cols, "email", u.Email)
	setString(cols, "phone", u.Phone)
	setString(cols, "subject", u.Subject)
	setString(cols, "message", u.Message)
	setString(cols, "status", u.Status)
	return cols
}

// ContactService handles contact inquiries.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, actor string, id uuid.UUID, in ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, actor string, id uuid.UUID) error
}

type contactService struct {
	repo  repository.ContactRepository
	audit auditlog.Recorder
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository, audit auditlog.Recorder) ContactService {
	return &contactService{repo: repo, audit: audit}
}

// Submit stores a new inquiry with status "new".
func (s *contactService) Submit(ctx context.Context, in ContactInput) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
		Status:  model.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, wrap("create contact", err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrap("list contacts", err)
	}
	return contacts, nil
}

func (s *contactService) Update(ctx context.Context, actor string, id uuid.UUID, in ContactUpdate) (*model.Contact, error) {
	contact, err := s.repo.Update(ctx, id, in.columns())
	if err != nil {
		return nil, wrap("update contact", err)
	}
	s.audit.Record(ctx, "contact.update", actor, map[string]string{"id": id.String()})
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, actor string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("delete contact", err)
	}
	s.audit.Record(ctx, "contact.delete", actor, map[string]string{"id": id.String()})
	return nil
}

func setString(cols map[string]interface{}, column string, v *string) {
	if v != nil {
		cols[column] = strings.TrimSpace(*v)
	}
}
