package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation-bot/model"
	"moderation-bot/utils/database/infractions"
	"sync"
	"time"
)

var errPlatform = errors.New("platform error")

type platformCall struct {
	Method  string
	GuildID string
	UserID  string
	Reason  string
	Until   time.Time
}

// fakePlatform records every call. ranks maps user id to role position; users
// missing from ranks are reported as not being members.
type fakePlatform struct {
	mu       sync.Mutex
	ranks    map[string]int
	rankErr  map[string]error
	fail     map[string]bool // user ids whose actions fail
	dmFail   map[string]bool // user ids whose DM channel cannot be opened
	calls    []platformCall
	messages map[string]string // dm channel id -> last content
}

func newFakePlatform(ranks map[string]int) *fakePlatform {
	return &fakePlatform{
		ranks:    ranks,
		rankErr:  map[string]error{},
		fail:     map[string]bool{},
		dmFail:   map[string]bool{},
		messages: map[string]string{},
	}
}

func (f *fakePlatform) record(c platformCall) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakePlatform) failing(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[userID] {
		return errPlatform
	}
	return nil
}

func (f *fakePlatform) Ban(_ context.Context, guildID, userID, reason string) error {
	f.record(platformCall{Method: "ban", GuildID: guildID, UserID: userID, Reason: reason})
	return f.failing(userID)
}

func (f *fakePlatform) Timeout(_ context.Context, guildID, userID string, until time.Time) error {
	f.record(platformCall{Method: "timeout", GuildID: guildID, UserID: userID, Until: until})
	return f.failing(userID)
}

func (f *fakePlatform) OpenDM(_ context.Context, userID string) (string, error) {
	f.record(platformCall{Method: "open_dm", UserID: userID})
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dmFail[userID] {
		return "", errPlatform
	}
	return "dm-" + userID, nil
}

func (f *fakePlatform) SendMessage(_ context.Context, channelID, content string) error {
	f.record(platformCall{Method: "send", UserID: channelID, Reason: content})
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[channelID] = content
	if f.fail[channelID[len("dm-"):]] {
		return errPlatform
	}
	return nil
}

func (f *fakePlatform) Kick(_ context.Context, guildID, userID, reason string) error {
	f.record(platformCall{Method: "kick", GuildID: guildID, UserID: userID, Reason: reason})
	return f.failing(userID)
}

func (f *fakePlatform) HighestRolePosition(_ context.Context, _ string, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.rankErr[userID]; ok {
		return 0, err
	}
	rank, ok := f.ranks[userID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMemberNotFound, userID)
	}
	return rank, nil
}

// actionCalls returns the calls that punish or kick someone, ignoring DM setup.
func (f *fakePlatform) actionCalls() []platformCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []platformCall
	for _, c := range f.calls {
		switch c.Method {
		case "ban", "timeout", "kick", "send":
			out = append(out, c)
		}
	}
	return out
}

type fakeStore struct {
	mu          sync.Mutex
	infractions map[int]model.Infraction
	records     []model.UserInfraction
	auditErr    map[string]error // user id -> error returned by LogPunishment
	lookupErr   error
}

func newFakeStore(infs ...model.Infraction) *fakeStore {
	s := &fakeStore{infractions: map[int]model.Infraction{}, auditErr: map[string]error{}}
	for _, inf := range infs {
		s.infractions[inf.ID] = inf
	}
	return s
}

func (s *fakeStore) GetInfraction(_ context.Context, id int) (*model.Infraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	inf, ok := s.infractions[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", infractions.ErrInfractionNotFound, id)
	}
	return &inf, nil
}

func (s *fakeStore) LogPunishment(_ context.Context, userID string, infractionID int) (*model.UserInfraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.auditErr[userID]; ok {
		return nil, err
	}
	if _, ok := s.infractions[infractionID]; !ok {
		return nil, fmt.Errorf("%w: id %d", infractions.ErrInfractionNotFound, infractionID)
	}
	rec := model.UserInfraction{
		ID:           int64(len(s.records) + 1),
		UserID:       userID,
		InfractionID: infractionID,
		CreatedAt:    time.Now(),
	}
	s.records = append(s.records, rec)
	return &rec, nil
}

func (s *fakeStore) recordsFor(userID string) []model.UserInfraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.UserInfraction
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

type fakeNotifier struct {
	mu       sync.Mutex
	warnings []string
}

func (n *fakeNotifier) Warn(module, operation, extraInfo string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, module+": "+operation+": "+extraInfo)
}
