package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leodahal4/portfolio/internal/config"
	"github.com/leodahal4/portfolio/internal/contact"
	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/visitors"
)

func TestSessionFactoryUsesConfiguredDelays(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	cfg := &config.Config{SubmitDelay: time.Second, ConfirmationDelay: 2 * time.Second}

	s, err := sessionFactory(cfg, content.Default(), clock)("abc")
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "abc", s.ID())

	require.NoError(t, s.SubmitContact(contact.Fields{Name: "Jane", Email: "jane@x.com", Message: "Hi"}))
	clock.Advance(time.Second)
	assert.Equal(t, contact.Submitted, s.View().Contact.State)
	clock.Advance(2 * time.Second)
	assert.Equal(t, contact.Idle, s.View().Contact.State)
}

func TestPrintStats(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	stats := &visitors.Stats{
		TotalVisits:    3,
		UniqueVisitors: 2,
		VisitsToday:    1,
		VisitsThisWeek: 3,
		TopPaths:       []visitors.PathCount{{Path: "/", Visits: 3}},
		RecentVisits: []visitors.Visit{
			{HashedIP: "abcd", Path: "/", VisitedAt: at},
			{HashedIP: "ef01", Path: "/", VisitedAt: at.Add(-time.Hour)},
		},
	}

	var out bytes.Buffer
	require.NoError(t, printStats(&out, stats, 1))

	text := out.String()
	assert.Contains(t, text, "Unique visitors")
	assert.Contains(t, text, "2024-06-01T09:30:00Z")
	assert.NotContains(t, text, "ef01")
}
