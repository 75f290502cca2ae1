// Package tracker owns the four in-memory collections (goals, habits,
// learning articles and hobby entries) and writes each one back to storage
// in full after every change.
package tracker

import (
	"fmt"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/logger"
	"github.com/julianstephens/lifeadvance/internal/storage"
)

type Tracker struct {
	provider storage.Provider
	opts     Options

	Goals    *Goals
	Habits   *Habits
	Articles *Articles
	Hobbies  *HobbyJournal
}

// New wires the managers to provider. Call LoadAll before use.
func New(provider storage.Provider, opts Options) *Tracker {
	opts = opts.withDefaults()
	return &Tracker{
		provider: provider,
		opts:     opts,
		Goals:    NewGoals(provider, opts),
		Habits:   NewHabits(provider, opts),
		Articles: NewArticles(provider, opts),
		Hobbies:  NewHobbyJournal(provider, opts),
	}
}

// Options returns the effective options, defaults filled in.
func (t *Tracker) Options() Options {
	return t.opts
}

// LoadAll reloads every collection independently.
func (t *Tracker) LoadAll() {
	t.Goals.Load()
	t.Habits.Load()
	t.Articles.Load()
	t.Hobbies.Load()
}

// ResetAll clears every collection and the onboarding flag, then reloads so
// the managers reflect the empty store (articles fall back to the seed set).
func (t *Tracker) ResetAll() error {
	if err := storage.ResetAll(t.provider); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	logger.Info("All data reset")
	t.LoadAll()
	return nil
}

// HasCompletedOnboarding reports whether the welcome flow has been shown.
func (t *Tracker) HasCompletedOnboarding() bool {
	done, err := storage.GetFlag(t.provider, constants.KeyHasCompletedOnboarding)
	if err != nil {
		logger.Warn("Failed to read onboarding flag", "error", err)
		return false
	}
	return done
}

// CompleteOnboarding records that the welcome flow has been shown.
func (t *Tracker) CompleteOnboarding() error {
	return storage.SetFlag(t.provider, constants.KeyHasCompletedOnboarding, true)
}

// ResetOnboarding clears the flag so the welcome flow is shown again.
func (t *Tracker) ResetOnboarding() error {
	return t.provider.Delete(constants.KeyHasCompletedOnboarding)
}
