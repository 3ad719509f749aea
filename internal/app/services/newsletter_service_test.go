package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/app/models/dto"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/mailer"
)

type fakeNewsletterRepo struct {
	subscribers map[string]*models.NewsletterSubscriber
	campaigns   map[int64]*models.NewsletterCampaign
	nextID      int64
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{
		subscribers: map[string]*models.NewsletterSubscriber{},
		campaigns:   map[int64]*models.NewsletterCampaign{},
		nextID:      1,
	}
}

func (f *fakeNewsletterRepo) Subscribe(_ context.Context, s *models.NewsletterSubscriber) error {
	if existing, ok := f.subscribers[s.Email]; ok {
		existing.IsActive = true
		existing.UnsubscribedAt = nil
		if s.Name != nil {
			existing.Name = s.Name
		}
		*s = *existing
		return nil
	}
	s.ID = f.nextID
	f.nextID++
	s.IsActive = true
	f.subscribers[s.Email] = s
	return nil
}

func (f *fakeNewsletterRepo) Unsubscribe(_ context.Context, email string) error {
	s, ok := f.subscribers[email]
	if !ok || !s.IsActive {
		return apperrors.NewResourceNotFoundError("No active subscription for this email")
	}
	s.IsActive = false
	return nil
}

func (f *fakeNewsletterRepo) ListActiveSubscribers(_ context.Context) ([]*models.NewsletterSubscriber, error) {
	var out []*models.NewsletterSubscriber
	for _, s := range f.subscribers {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeNewsletterRepo) CountActiveSubscribers(ctx context.Context) (int64, error) {
	subs, _ := f.ListActiveSubscribers(ctx)
	return int64(len(subs)), nil
}

func (f *fakeNewsletterRepo) CreateCampaign(_ context.Context, c *models.NewsletterCampaign) error {
	c.ID = f.nextID
	f.nextID++
	c.Status = models.CampaignDraft
	f.campaigns[c.ID] = c
	return nil
}

func (f *fakeNewsletterRepo) GetCampaignByID(_ context.Context, id int64) (*models.NewsletterCampaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperrors.ErrCampaignNotFound
	}
	return c, nil
}

func (f *fakeNewsletterRepo) ListCampaigns(_ context.Context) ([]*models.NewsletterCampaign, error) {
	var out []*models.NewsletterCampaign
	for _, c := range f.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeNewsletterRepo) UpdateCampaign(_ context.Context, c *models.NewsletterCampaign) error {
	existing, ok := f.campaigns[c.ID]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	if existing.Status != models.CampaignDraft {
		return apperrors.ErrCampaignAlreadySent
	}
	f.campaigns[c.ID] = c
	return nil
}

func (f *fakeNewsletterRepo) DeleteCampaign(_ context.Context, id int64) error {
	c, ok := f.campaigns[id]
	if !ok || c.Status != models.CampaignDraft {
		return apperrors.ErrCampaignNotFound
	}
	delete(f.campaigns, id)
	return nil
}

func (f *fakeNewsletterRepo) MarkCampaignSending(_ context.Context, id int64) error {
	c, ok := f.campaigns[id]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	if c.Status != models.CampaignDraft {
		return apperrors.ErrCampaignAlreadySent
	}
	c.Status = models.CampaignSending
	return nil
}

func (f *fakeNewsletterRepo) MarkCampaignSent(_ context.Context, id int64, recipientCount int) error {
	c, ok := f.campaigns[id]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	c.Status = models.CampaignSent
	c.RecipientCount = recipientCount
	return nil
}

func (f *fakeNewsletterRepo) MarkCampaignFailed(_ context.Context, id int64) error {
	c, ok := f.campaigns[id]
	if !ok {
		return apperrors.ErrCampaignNotFound
	}
	c.Status = models.CampaignFailed
	return nil
}

// fakeMailer records sends and can be told to fail
type fakeMailer struct {
	sendErr    error
	bulkErr    error
	sent       []mailer.Message
	bulkTo     []mailer.Recipient
	contacts   map[string]string
	deleteErrs int
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{contacts: map[string]string{}}
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) SendBulk(_ context.Context, msg mailer.Message, to []mailer.Recipient) (int, error) {
	if f.bulkErr != nil {
		return 0, f.bulkErr
	}
	f.sent = append(f.sent, msg)
	f.bulkTo = to
	return len(to), nil
}

func (f *fakeMailer) UpsertContact(_ context.Context, contact mailer.Recipient) error {
	f.contacts[contact.Email] = contact.Name
	return nil
}

func (f *fakeMailer) DeleteContact(_ context.Context, email string) error {
	delete(f.contacts, email)
	return nil
}

func newNewsletterFixture() (*NewsletterService, *fakeNewsletterRepo, *fakeMailer) {
	repo := newFakeNewsletterRepo()
	mail := newFakeMailer()
	return NewNewsletterService(repo, mail), repo, mail
}

func TestSubscribeSyncsContactList(t *testing.T) {
	svc, _, mail := newNewsletterFixture()

	name := "Ada"
	sub, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ada@example.com", Name: &name})
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "Ada", mail.contacts["ada@example.com"])
}

func TestResubscribeReactivates(t *testing.T) {
	svc, _, _ := newNewsletterFixture()

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "ada@example.com"))

	sub, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "ada@example.com"})
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
}

func TestUnsubscribeUnknownEmailFails(t *testing.T) {
	svc, _, _ := newNewsletterFixture()

	err := svc.Unsubscribe(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSendCampaignDeliversToActiveSubscribers(t *testing.T) {
	svc, repo, mail := newNewsletterFixture()

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "b@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "b@example.com"))

	campaign, err := svc.CreateCampaign(context.Background(), &dto.CreateCampaignRequest{
		Subject:  "March update",
		HTMLBody: "<p>News</p>",
	})
	require.NoError(t, err)

	result, err := svc.SendCampaign(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Recipients)
	assert.Len(t, mail.bulkTo, 1)
	assert.Equal(t, "a@example.com", mail.bulkTo[0].Email)

	sent, err := repo.GetCampaignByID(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignSent, sent.Status)
	assert.Equal(t, 1, sent.RecipientCount)
}

func TestSendCampaignTwiceFails(t *testing.T) {
	svc, _, _ := newNewsletterFixture()

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "a@example.com"})
	require.NoError(t, err)

	campaign, err := svc.CreateCampaign(context.Background(), &dto.CreateCampaignRequest{
		Subject: "Once", HTMLBody: "<p>once</p>",
	})
	require.NoError(t, err)

	_, err = svc.SendCampaign(context.Background(), campaign.ID)
	require.NoError(t, err)

	_, err = svc.SendCampaign(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrCampaignAlreadySent)
}

func TestSendCampaignWithoutRecipientsFails(t *testing.T) {
	svc, repo, _ := newNewsletterFixture()

	campaign, err := svc.CreateCampaign(context.Background(), &dto.CreateCampaignRequest{
		Subject: "To nobody", HTMLBody: "<p>hello?</p>",
	})
	require.NoError(t, err)

	_, err = svc.SendCampaign(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoRecipients)

	// Still a draft, so it can be sent once subscribers exist
	c, err := repo.GetCampaignByID(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignDraft, c.Status)
}

func TestSendCampaignProviderFailureMarksFailed(t *testing.T) {
	svc, repo, mail := newNewsletterFixture()
	mail.bulkErr = errors.New("rate limited")

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "a@example.com"})
	require.NoError(t, err)

	campaign, err := svc.CreateCampaign(context.Background(), &dto.CreateCampaignRequest{
		Subject: "Doomed", HTMLBody: "<p>bad luck</p>",
	})
	require.NoError(t, err)

	_, err = svc.SendCampaign(context.Background(), campaign.ID)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamService)

	c, err := repo.GetCampaignByID(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignFailed, c.Status)
}

func TestUpdateCampaignAfterSendFails(t *testing.T) {
	svc, _, _ := newNewsletterFixture()

	_, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "a@example.com"})
	require.NoError(t, err)

	campaign, err := svc.CreateCampaign(context.Background(), &dto.CreateCampaignRequest{
		Subject: "Sealed", HTMLBody: "<p>final</p>",
	})
	require.NoError(t, err)
	_, err = svc.SendCampaign(context.Background(), campaign.ID)
	require.NoError(t, err)

	subject := "Changed my mind"
	_, err = svc.UpdateCampaign(context.Background(), campaign.ID, &dto.UpdateCampaignRequest{Subject: &subject})
	assert.ErrorIs(t, err, apperrors.ErrCampaignAlreadySent)
}
