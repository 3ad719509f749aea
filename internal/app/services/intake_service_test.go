package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
)

type fakeIntakeRepo struct {
	complaints   map[int64]*models.Complaint
	applications map[int64]*models.JoinApplication
	nextID       int64
}

func newFakeIntakeRepo() *fakeIntakeRepo {
	return &fakeIntakeRepo{
		complaints:   map[int64]*models.Complaint{},
		applications: map[int64]*models.JoinApplication{},
		nextID:       1,
	}
}

func (f *fakeIntakeRepo) CreateComplaint(_ context.Context, c *models.Complaint) error {
	c.ID = f.nextID
	f.nextID++
	c.Status = models.ComplaintOpen
	f.complaints[c.ID] = c
	return nil
}

func (f *fakeIntakeRepo) GetComplaintByID(_ context.Context, id int64) (*models.Complaint, error) {
	c, ok := f.complaints[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Complaint not found")
	}
	return c, nil
}

func (f *fakeIntakeRepo) ListComplaints(_ context.Context, status models.ComplaintStatus, page, pageSize int) ([]*models.Complaint, int64, error) {
	var out []*models.Complaint
	for _, c := range f.complaints {
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeIntakeRepo) UpdateComplaintStatus(_ context.Context, id int64, status models.ComplaintStatus) error {
	c, ok := f.complaints[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("Complaint not found")
	}
	c.Status = status
	return nil
}

func (f *fakeIntakeRepo) DeleteComplaint(_ context.Context, id int64) error {
	if _, ok := f.complaints[id]; !ok {
		return apperrors.NewResourceNotFoundError("Complaint not found")
	}
	delete(f.complaints, id)
	return nil
}

func (f *fakeIntakeRepo) CountOpenComplaints(_ context.Context) (int64, error) {
	var n int64
	for _, c := range f.complaints {
		if c.Status == models.ComplaintOpen {
			n++
		}
	}
	return n, nil
}

func (f *fakeIntakeRepo) CreateApplication(_ context.Context, a *models.JoinApplication) error {
	a.ID = f.nextID
	f.nextID++
	a.Status = models.ApplicationPending
	f.applications[a.ID] = a
	return nil
}

func (f *fakeIntakeRepo) GetApplicationByID(_ context.Context, id int64) (*models.JoinApplication, error) {
	a, ok := f.applications[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("Application not found")
	}
	return a, nil
}

func (f *fakeIntakeRepo) ListApplications(_ context.Context, status models.ApplicationStatus, page, pageSize int) ([]*models.JoinApplication, int64, error) {
	var out []*models.JoinApplication
	for _, a := range f.applications {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeIntakeRepo) UpdateApplicationStatus(_ context.Context, id int64, status models.ApplicationStatus) error {
	a, ok := f.applications[id]
	if !ok {
		return apperrors.NewResourceNotFoundError("Application not found")
	}
	if a.Status != models.ApplicationPending {
		return apperrors.ErrAlreadyResolved
	}
	a.Status = status
	return nil
}

func (f *fakeIntakeRepo) DeleteApplication(_ context.Context, id int64) error {
	if _, ok := f.applications[id]; !ok {
		return apperrors.NewResourceNotFoundError("Application not found")
	}
	delete(f.applications, id)
	return nil
}

func (f *fakeIntakeRepo) CountPendingApplications(_ context.Context) (int64, error) {
	var n int64
	for _, a := range f.applications {
		if a.Status == models.ApplicationPending {
			n++
		}
	}
	return n, nil
}

func TestFileComplaintOpensNew(t *testing.T) {
	svc := NewIntakeService(newFakeIntakeRepo())

	complaint, err := svc.FileComplaint(context.Background(), &dto.CreateComplaintRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Broken heating",
		Body:    "Room 12 has had no heating for a week.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintOpen, complaint.Status)
	assert.NotZero(t, complaint.ID)
}

func TestListComplaintsFiltersByStatus(t *testing.T) {
	repo := newFakeIntakeRepo()
	svc := NewIntakeService(repo)

	for _, subject := range []string{"Heating", "Noise", "Wifi"} {
		_, err := svc.FileComplaint(context.Background(), &dto.CreateComplaintRequest{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Subject: subject,
			Body:    "Details about " + subject,
		})
		require.NoError(t, err)
	}
	_, err := svc.UpdateComplaintStatus(context.Background(), 1, models.ComplaintResolved)
	require.NoError(t, err)

	open, _, err := svc.ListComplaints(context.Background(), "OPEN", 1, 10)
	require.NoError(t, err)
	assert.Len(t, open, 2)

	all, _, err := svc.ListComplaints(context.Background(), "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateComplaintStatusUnknownIDFails(t *testing.T) {
	svc := NewIntakeService(newFakeIntakeRepo())

	_, err := svc.UpdateComplaintStatus(context.Background(), 99, models.ComplaintResolved)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSubmitApplicationStartsPending(t *testing.T) {
	svc := NewIntakeService(newFakeIntakeRepo())

	app, err := svc.SubmitApplication(context.Background(), &dto.CreateJoinApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Campus:    "North",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, app.Status)
}

func TestResolveApplicationOnlyOnce(t *testing.T) {
	svc := NewIntakeService(newFakeIntakeRepo())

	app, err := svc.SubmitApplication(context.Background(), &dto.CreateJoinApplicationRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Campus:    "North",
	})
	require.NoError(t, err)

	resolved, err := svc.ResolveApplication(context.Background(), app.ID, models.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, resolved.Status)

	_, err = svc.ResolveApplication(context.Background(), app.ID, models.ApplicationDeclined)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyResolved)
}

func TestDeleteComplaintUnknownIDFails(t *testing.T) {
	svc := NewIntakeService(newFakeIntakeRepo())
	assert.ErrorIs(t, svc.DeleteComplaint(context.Background(), 99), apperrors.ErrResourceNotFound)
}
