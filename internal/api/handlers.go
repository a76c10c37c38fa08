package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/service"
	"github.com/limbo/adhyaya/pkg/entity"
	"github.com/limbo/adhyaya/pkg/httputil"
)

type RegisterRequest struct {
	Name        string `json:"name"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// ActivityDate is optional, the session is counted for "now" when omitted
type TrackSessionRequest struct {
	MinutesFocused int        `json:"minutes_focused"`
	IsDeepFocus    bool       `json:"is_deep_focus"`
	ActivityDate   *time.Time `json:"activity_date,omitempty"`
}

type TrackSessionResponse struct {
	Stats     *entity.EngagementRecord `json:"stats"`
	NewTitles []entity.Title           `json:"new_titles"`
}

type PlanSessionsRequest struct {
	Count int `json:"count"`
}

// Null title_id clears the displayed title
type SetActiveTitleRequest struct {
	TitleID *entity.TitleID `json:"title_id"`
}

type LeaderboardResponse struct {
	Page    int                        `json:"page"`
	Limit   int                        `json:"limit"`
	Entries []*entity.LeaderboardEntry `json:"entries"`
}

type ArchivesResponse struct {
	Page     int                            `json:"page"`
	Limit    int                            `json:"limit"`
	Archives []*entity.MonthlyWinnerArchive `json:"archives"`
}

// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

// @Summary Register user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:        req.Name,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password", err)
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// @Summary Login and get bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} map[string]string
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// @Summary Delete own account
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param request body DeleteAccountRequest true "password confirmation"
// @Success 204
// @Failure 403 {object} httputil.ErrorResponse
// @Router /auth/account [delete]
func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

// @Summary Record finished focus session
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TrackSessionRequest true "session"
// @Success 200 {object} TrackSessionResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /engagement/sessions [post]
func (s *Server) TrackSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("track session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TrackSessionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("track session error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	sreq := &service.TrackSessionRequest{
		UserID:         uid,
		MinutesFocused: req.MinutesFocused,
		IsDeepFocus:    req.IsDeepFocus,
	}
	if req.ActivityDate != nil {
		sreq.ActivityDate = *req.ActivityDate
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.engagementService.TrackSession(ctx, sreq)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("track session error: invalid session")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("track session error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("track session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while tracking session", nil)
		}
		return
	}
	newTitles := res.NewTitles
	if newTitles == nil {
		newTitles = make([]entity.Title, 0)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TrackSessionResponse{
		Stats:     res.Record,
		NewTitles: newTitles,
	})
	logger.Info("session tracked", slog.Int("minutes", req.MinutesFocused), slog.Int("new_titles", len(newTitles)))
}

// @Summary Add planned sessions
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlanSessionsRequest true "planned sessions"
// @Success 200 {object} entity.EngagementRecord
// @Failure 400 {object} httputil.ErrorResponse
// @Router /engagement/plans [post]
func (s *Server) PlanSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("plan sessions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PlanSessionsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("plan sessions error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rec, err := s.engagementService.PlanSessions(ctx, &service.PlanSessionsRequest{
		UserID: uid,
		Count:  req.Count,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("plan sessions error: invalid count")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sessions count", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("plan sessions error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("plan sessions error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while planning sessions", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("sessions planned")
}

// @Summary Current engagement stats
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.EngagementRecord
// @Router /engagement/stats [get]
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rec, err := s.engagementService.GetStats(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get stats error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("stats provided")
}

// @Summary Choose displayed title
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetActiveTitleRequest true "title id, null clears"
// @Success 200 {object} entity.EngagementRecord
// @Failure 409 {object} httputil.ErrorResponse
// @Router /engagement/active-title [put]
func (s *Server) SetActiveTitle(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set title error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetActiveTitleRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("set title error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rec, err := s.engagementService.SetActiveTitle(ctx, uid, req.TitleID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownTitle):
			logger.Error("set title error: unknown title")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown title", nil)
		case errors.Is(err, errorvalues.ErrTitleNotEarned):
			logger.Error("set title error: title not earned")
			httputil.WriteErrorResponse(w, http.StatusConflict, "title is not earned yet", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("set title error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("set title error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting title", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("active title changed")
}

// @Summary Focus Masters leaderboard
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "page, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} LeaderboardResponse
// @Router /leaderboard [get]
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit, offset := pageParams(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.engagementService.Leaderboard(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("leaderboard error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting leaderboard", nil)
		return
	}
	if entries == nil {
		entries = make([]*entity.LeaderboardEntry, 0)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LeaderboardResponse{
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
	logger.Info("leaderboard provided")
}

// @Summary Monthly winners, newest first
// @Tags archives
// @Produce json
// @Security BearerAuth
// @Param page query int false "page, from 1"
// @Param limit query int false "page size, up to 50"
// @Success 200 {object} ArchivesResponse
// @Router /archives [get]
func (s *Server) ListArchives(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, limit, offset := pageParams(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	archives, err := s.archiveService.ListArchives(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("list archives error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting archives", nil)
		return
	}
	if archives == nil {
		archives = make([]*entity.MonthlyWinnerArchive, 0)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ArchivesResponse{
		Page:     page,
		Limit:    limit,
		Archives: archives,
	})
	logger.Info("archives provided")
}

// @Summary Winner of one month
// @Tags archives
// @Produce json
// @Security BearerAuth
// @Param year path int true "year"
// @Param month path int true "month, 1-12"
// @Success 200 {object} entity.MonthlyWinnerArchive
// @Failure 404 {object} httputil.ErrorResponse
// @Router /archives/{year}/{month} [get]
func (s *Server) GetArchive(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	if errY != nil || errM != nil {
		logger.Error("get archive error: invalid period in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year or month in path", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	archive, err := s.archiveService.GetArchive(ctx, month, year)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidPeriod):
			logger.Error("get archive error: invalid period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year or month", nil)
		case errors.Is(err, errorvalues.ErrArchiveNotFound):
			logger.Error("get archive error: no archive for period")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no winner archived for this month", nil)
		default:
			logger.Error("get archive error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting archive", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, archive)
	logger.Info("archive provided", slog.Int("year", year), slog.Int("month", month))
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 50
	maxPage          = 100000
)

// pageParams clamps page to [1, maxPage] so the offset never overflows.
func pageParams(r *http.Request) (page, limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	page = min(page, maxPage)
	return page, limit, (page - 1) * limit
}
