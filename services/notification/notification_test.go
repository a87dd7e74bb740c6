package notification

import (
	"context"
	"errors"
	"testing"

	"dharmachain/models"
	"dharmachain/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type outbox struct {
	sent []Email
	fail map[string]error
}

func (o *outbox) Send(ctx context.Context, e Email) (string, error) {
	if err := o.fail[e.To[0]]; err != nil {
		return "", err
	}
	o.sent = append(o.sent, e)
	return "msg", nil
}

func TestEmailNotifierMailsDonorAndTrust(t *testing.T) {
	box := &outbox{}
	n := NewEmailNotifier(box, "trust@dharmachain.org", nil)

	err := n.NotifyDonation(context.Background(), models.DonationConfirmation{
		ReceiptID: "r-1", Name: "Asha <b>", Email: "asha@example.org", Amount: 501, Category: "Gowshala",
	})
	require.NoError(t, err)
	require.Len(t, box.sent, 2)
	assert.Equal(t, []string{"asha@example.org"}, box.sent[0].To)
	assert.Equal(t, []string{"trust@dharmachain.org"}, box.sent[1].To)
	assert.Equal(t, "asha@example.org", box.sent[1].ReplyTo)
	assert.Contains(t, box.sent[0].HTML, "₹501 to Gowshala")
	assert.Contains(t, box.sent[0].HTML, "Asha &lt;b&gt;")
}

func TestEmailNotifierAnonymousOnlyMailsTrust(t *testing.T) {
	box := &outbox{}
	n := NewEmailNotifier(box, "trust@dharmachain.org", nil)

	require.NoError(t, n.NotifyDonation(context.Background(), models.DonationConfirmation{ReceiptID: "r-2", Amount: 10, Category: "Eye Camps"}))
	require.Len(t, box.sent, 1)
	assert.Contains(t, box.sent[0].HTML, "Anonymous Donor")
}

func TestEmailNotifierReportsFailures(t *testing.T) {
	box := &outbox{fail: map[string]error{"asha@example.org": errors.New("bounced")}}
	n := NewEmailNotifier(box, "trust@dharmachain.org", nil)

	err := n.NotifyDonation(context.Background(), models.DonationConfirmation{ReceiptID: "r-3", Name: "Asha", Email: "asha@example.org", Amount: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "donor email")
	assert.Len(t, box.sent, 1)
}

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t-1", Queue: "default"}, nil
}

func TestQueuedNotifierEnqueues(t *testing.T) {
	q := &fakeQueue{}
	n := &QueuedNotifier{client: q, logger: nopLogger()}

	require.NoError(t, n.NotifyDonation(context.Background(), models.DonationConfirmation{ReceiptID: "r-4", Amount: 101}))
	require.Len(t, q.tasks, 1)
	assert.Equal(t, tasks.TypeDonationConfirmation, q.tasks[0].Type())
}

func TestQueuedNotifierIgnoresDuplicates(t *testing.T) {
	n := &QueuedNotifier{client: &fakeQueue{err: asynq.ErrTaskIDConflict}, logger: nopLogger()}
	assert.NoError(t, n.NotifyDonation(context.Background(), models.DonationConfirmation{ReceiptID: "r-5"}))

	n = &QueuedNotifier{client: &fakeQueue{err: errors.New("redis down")}, logger: nopLogger()}
	assert.Error(t, n.NotifyDonation(context.Background(), models.DonationConfirmation{ReceiptID: "r-6"}))
}

func nopLogger() *zap.Logger { return zap.NewNop() }
