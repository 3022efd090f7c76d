package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hiretrack/hiretrack-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedNotification(t *testing.T, db *gorm.DB, candidateID uuid.UUID, read bool, createdAt time.Time) *models.Notification {
	t.Helper()
	notification := models.Notification{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Message:     "Candidate status changed from Applied to Screening",
		Type:        models.NotificationStatusChange,
		IsRead:      read,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&notification).Error)
	return &notification
}

func TestNotificationListFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	job := seedJob(t, db)
	ada := seedCandidate(t, db, job.ID, models.StatusApplied)
	bob := seedCandidate(t, db, job.ID, models.StatusScreening)

	base := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	older := seedNotification(t, db, ada.ID, true, base)
	newer := seedNotification(t, db, ada.ID, false, base.Add(time.Hour))
	seedNotification(t, db, bob.ID, false, base.Add(2*time.Hour))

	all, err := svc.List(nil, false)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Scoped to one candidate, newest first.
	forAda, err := svc.List(&ada.ID, false)
	require.NoError(t, err)
	require.Len(t, forAda, 2)
	require.Equal(t, newer.ID, forAda[0].ID)
	require.Equal(t, older.ID, forAda[1].ID)

	unread, err := svc.List(&ada.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, newer.ID, unread[0].ID)
}

func TestNotificationMarkRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	job := seedJob(t, db)
	candidate := seedCandidate(t, db, job.ID, models.StatusApplied)
	notification := seedNotification(t, db, candidate.ID, false, time.Now())

	marked, err := svc.MarkRead(notification.ID)
	require.NoError(t, err)
	require.True(t, marked.IsRead)

	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", notification.ID).Error)
	require.True(t, stored.IsRead)

	_, err = svc.MarkRead(uuid.New())
	require.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationMarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	job := seedJob(t, db)
	ada := seedCandidate(t, db, job.ID, models.StatusApplied)
	bob := seedCandidate(t, db, job.ID, models.StatusScreening)

	seedNotification(t, db, ada.ID, false, time.Now())
	seedNotification(t, db, ada.ID, false, time.Now())
	seedNotification(t, db, ada.ID, true, time.Now())
	untouched := seedNotification(t, db, bob.ID, false, time.Now())

	count, err := svc.MarkAllRead(ada.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	unread, err := svc.List(&ada.ID, true)
	require.NoError(t, err)
	require.Empty(t, unread)

	// Idempotent: a second pass finds nothing left to mark.
	count, err = svc.MarkAllRead(ada.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	// Other candidates' notifications are untouched.
	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", untouched.ID).Error)
	require.False(t, stored.IsRead)
}
