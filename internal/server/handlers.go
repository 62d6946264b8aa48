package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"braintrainer/internal/badges"
	"braintrainer/internal/game"
	"braintrainer/internal/metrics"
	"braintrainer/internal/notify"
	"braintrainer/internal/stats"
	"braintrainer/internal/storage"
	"braintrainer/internal/streak"
	"braintrainer/internal/utility"
)

type createProfileRequest struct {
	Name        string `json:"name"`
	AvatarEmoji string `json:"avatarEmoji"`
}

type profileResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AvatarEmoji string    `json:"avatarEmoji"`
	CreatedAt   time.Time `json:"createdAt"`
}

type badgeResponse struct {
	Type        string    `json:"badgeType"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type sessionRequest struct {
	GameType        string     `json:"gameType"`
	Score           int        `json:"score"`
	Level           int        `json:"level"`
	DurationSeconds int        `json:"durationSeconds"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

type sessionResponse struct {
	SessionID     string          `json:"sessionId"`
	Accuracy      float64         `json:"accuracy"`
	Percentile    int             `json:"percentile"`
	Bracket       stats.Bracket   `json:"bracket"`
	NewBadges     []badgeResponse `json:"newBadges"`
	UnlockedLevel int             `json:"unlockedLevel,omitempty"`
}

type summaryResponse struct {
	Profile       profileResponse   `json:"profile"`
	TotalSessions int               `json:"totalSessions"`
	Streak        int               `json:"streak"`
	Badges        []badgeResponse   `json:"badges"`
	SyncedBadges  []string          `json:"syncedBadges"`
	MaxLevels     map[game.Type]int `json:"maxLevels"`
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createProfile(w, r)
	case http.MethodGet:
		profiles, err := s.Repo.Profiles()
		if err != nil {
			serverError(w, "listing profiles", err)
			return
		}
		out := make([]profileResponse, 0, len(profiles))
		for _, p := range profiles {
			out = append(out, toProfileResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) createProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if req.AvatarEmoji == "" {
		req.AvatarEmoji = utility.RandomAvatarEmoji()
	}

	p := storage.Profile{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		AvatarEmoji: req.AvatarEmoji,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.CreateProfile(p); err != nil {
		serverError(w, "creating profile", err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

// handleProfile dispatches /profiles/{id} and its sub-resources.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 2 || parts[1] == "" {
		http.Error(w, "Profile ID required", http.StatusBadRequest)
		return
	}
	profileID := parts[1]

	sub := ""
	if len(parts) > 2 {
		sub = parts[2]
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		s.profileSummary(w, r, profileID)
	case sub == "" && r.Method == http.MethodDelete:
		s.deleteProfile(w, r, profileID)
	case sub == "sessions" && r.Method == http.MethodPost:
		s.recordSession(w, r, profileID)
	case sub == "badges" && r.Method == http.MethodGet:
		s.listBadges(w, r, profileID)
	case sub == "progress" && r.Method == http.MethodGet:
		s.badgeProgress(w, r, profileID)
	case sub == "leaderboard" && r.Method == http.MethodGet:
		s.leaderboard(w, r, profileID)
	case sub == "reset" && r.Method == http.MethodPost:
		s.resetProgress(w, r, profileID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// recordSession is the post-round entry point: persist the session, then run
// the incremental badge check and the difficulty unlock check, in that order.
func (s *Server) recordSession(w http.ResponseWriter, r *http.Request, profileID string) {
	if _, err := s.Repo.Profile(profileID); err != nil {
		notFoundOr500(w, err)
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	gt := game.Type(req.GameType)
	if !game.Valid(gt) {
		http.Error(w, "Unknown game type", http.StatusBadRequest)
		return
	}
	if req.Score < 0 {
		http.Error(w, "Score must be non-negative", http.StatusBadRequest)
		return
	}
	if req.Level < 1 || req.Level > 3 {
		http.Error(w, "Level must be between 1 and 3", http.StatusBadRequest)
		return
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}
	session := game.Session{
		ID:              uuid.New().String(),
		GameType:        gt,
		Score:           req.Score,
		MaxScore:        game.MaxScore(gt),
		Level:           req.Level,
		CompletedAt:     completedAt,
		DurationSeconds: req.DurationSeconds,
	}

	if err := s.Repo.SaveSession(profileID, session); err != nil {
		serverError(w, "saving session", err)
		return
	}
	metrics.SessionsRecorded.WithLabelValues(string(gt)).Inc()

	history, err := s.Repo.Sessions(profileID)
	if err != nil {
		serverError(w, "loading history", err)
		return
	}

	newBadges, err := s.Badges.CheckSession(profileID, history)
	if err != nil {
		serverError(w, "checking badges", err)
		return
	}
	unlockedLevel, err := s.Unlocks.CheckSession(profileID, session)
	if err != nil {
		serverError(w, "checking unlock", err)
		return
	}

	now := time.Now()
	badgeInfos := make([]badgeResponse, 0, len(newBadges))
	for _, bt := range newBadges {
		metrics.BadgesAwarded.WithLabelValues(string(bt)).Inc()
		info := badges.Catalog[bt]
		badgeInfos = append(badgeInfos, toBadgeResponse(badges.Badge{Type: bt, UnlockedAt: now}))
		s.Hub.Broadcast(notify.Event{
			Type:      "badge",
			ProfileID: profileID,
			BadgeType: string(bt),
			Name:      info.Name,
			Icon:      info.Icon,
		})
	}
	if unlockedLevel > 0 {
		metrics.LevelsUnlocked.WithLabelValues(string(gt)).Inc()
		s.Hub.Broadcast(notify.Event{
			Type:      "unlock",
			ProfileID: profileID,
			GameType:  string(gt),
			Level:     unlockedLevel,
		})
	}

	percentile := s.Model.Percentile(gt, req.Score)
	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID:     session.ID,
		Accuracy:      session.Accuracy(),
		Percentile:    percentile,
		Bracket:       stats.BracketFor(percentile),
		NewBadges:     badgeInfos,
		UnlockedLevel: unlockedLevel,
	})
}

// profileSummary backs the profile screen. Opening it triggers the full
// badge resync, which picks up anything the incremental path missed.
func (s *Server) profileSummary(w http.ResponseWriter, r *http.Request, profileID string) {
	profile, err := s.Repo.Profile(profileID)
	if err != nil {
		notFoundOr500(w, err)
		return
	}

	history, err := s.Repo.Sessions(profileID)
	if err != nil {
		serverError(w, "loading history", err)
		return
	}

	synced, err := s.Badges.Sync(profileID, history)
	if err != nil {
		serverError(w, "resyncing badges", err)
		return
	}
	metrics.ResyncsRun.Inc()
	for _, bt := range synced {
		metrics.BadgesAwarded.WithLabelValues(string(bt)).Inc()
	}

	owned, err := s.Repo.Badges(profileID)
	if err != nil {
		serverError(w, "loading badges", err)
		return
	}
	levels, err := s.Unlocks.MaxLevels(profileID)
	if err != nil {
		serverError(w, "loading unlocks", err)
		return
	}

	times := make([]time.Time, len(history))
	for i, sess := range history {
		times[i] = sess.CompletedAt
	}

	syncedTypes := make([]string, 0, len(synced))
	for _, bt := range synced {
		syncedTypes = append(syncedTypes, string(bt))
	}
	badgeInfos := make([]badgeResponse, 0, len(owned))
	for _, b := range owned {
		badgeInfos = append(badgeInfos, toBadgeResponse(b))
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Profile:       toProfileResponse(*profile),
		TotalSessions: len(history),
		Streak:        streak.Current(times, time.Now()),
		Badges:        badgeInfos,
		SyncedBadges:  syncedTypes,
		MaxLevels:     levels,
	})
}

func (s *Server) listBadges(w http.ResponseWriter, r *http.Request, profileID string) {
	if _, err := s.Repo.Profile(profileID); err != nil {
		notFoundOr500(w, err)
		return
	}
	owned, err := s.Repo.Badges(profileID)
	if err != nil {
		serverError(w, "loading badges", err)
		return
	}
	out := make([]badgeResponse, 0, len(owned))
	for _, b := range owned {
		out = append(out, toBadgeResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) badgeProgress(w http.ResponseWriter, r *http.Request, profileID string) {
	if _, err := s.Repo.Profile(profileID); err != nil {
		notFoundOr500(w, err)
		return
	}
	history, err := s.Repo.Sessions(profileID)
	if err != nil {
		serverError(w, "loading history", err)
		return
	}
	owned, err := s.Repo.Badges(profileID)
	if err != nil {
		serverError(w, "loading badges", err)
		return
	}
	writeJSON(w, http.StatusOK, s.Badges.Progress(history, owned))
}

func (s *Server) leaderboard(w http.ResponseWriter, r *http.Request, profileID string) {
	profile, err := s.Repo.Profile(profileID)
	if err != nil {
		notFoundOr500(w, err)
		return
	}

	gt := game.Type(r.URL.Query().Get("game"))
	if !game.Valid(gt) {
		http.Error(w, "Unknown game type", http.StatusBadRequest)
		return
	}

	history, err := s.Repo.Sessions(profileID)
	if err != nil {
		serverError(w, "loading history", err)
		return
	}
	bestScore := 0
	for _, sess := range history {
		if sess.GameType == gt && sess.Score > bestScore {
			bestScore = sess.Score
		}
	}

	writeJSON(w, http.StatusOK, s.Model.Leaderboard(gt, profile.Name, bestScore))
}

func (s *Server) resetProgress(w http.ResponseWriter, r *http.Request, profileID string) {
	if _, err := s.Repo.Profile(profileID); err != nil {
		notFoundOr500(w, err)
		return
	}
	if err := s.Repo.ResetProgress(profileID); err != nil {
		serverError(w, "resetting progress", err)
		return
	}
	slog.Info("progress reset", "profile", profileID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteProfile(w http.ResponseWriter, r *http.Request, profileID string) {
	if _, err := s.Repo.Profile(profileID); err != nil {
		notFoundOr500(w, err)
		return
	}
	if err := s.Repo.DeleteProfile(profileID); err != nil {
		serverError(w, "deleting profile", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGames serves the static roster so the UI can render the game list.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	type gameResponse struct {
		Type     game.Type     `json:"gameType"`
		Category game.Category `json:"category"`
		Name     string        `json:"name"`
		MaxScore int           `json:"maxScore"`
	}
	out := make([]gameResponse, 0, len(game.AllTypes))
	for _, gt := range game.AllTypes {
		info := game.AllGames[gt]
		out = append(out, gameResponse{Type: gt, Category: info.Category, Name: info.Name, MaxScore: info.MaxScore})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toProfileResponse(p storage.Profile) profileResponse {
	return profileResponse{ID: p.ID, Name: p.Name, AvatarEmoji: p.AvatarEmoji, CreatedAt: p.CreatedAt}
}

func toBadgeResponse(b badges.Badge) badgeResponse {
	info := badges.Catalog[b.Type]
	return badgeResponse{
		Type:        string(b.Type),
		Category:    string(info.Category),
		Name:        info.Name,
		Description: info.Description,
		Icon:        info.Icon,
		UnlockedAt:  b.UnlockedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func serverError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func notFoundOr500(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	serverError(w, "loading profile", err)
}
