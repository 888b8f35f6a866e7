package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/electroleed/project-office/internal/core/domain"
	"github.com/electroleed/project-office/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if p, ok := r.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func TestProjectService_Create_AssignsID(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, newStubEmployeeRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Project{Name: "Office tower"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("ID not assigned")
	}
	if _, ok := repo.projects[created.ID]; !ok {
		t.Fatalf("project not persisted under assigned ID")
	}
}

func TestProjectService_Create_ValidatesResponsible(t *testing.T) {
	employees := newStubEmployeeRepo()
	employees.employees["e1"] = &domain.Employee{ID: "e1", FullName: "Alice A"}
	svc := NewProjectService(newStubProjectRepo(), employees, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Project{Name: "P", ResponsibleID: "ghost"}); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Project{Name: "P", ResponsibleID: "e1"}); err != nil {
		t.Fatalf("valid responsible rejected: %v", err)
	}
}

func TestProjectService_Create_RequiresName(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), newStubEmployeeRepo(), zerolog.Nop())
	if _, err := svc.Create(context.Background(), &domain.Project{}); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), newStubEmployeeRepo(), zerolog.Nop())
	err := svc.Update(context.Background(), &domain.Project{ID: "ghost", Name: "P"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
