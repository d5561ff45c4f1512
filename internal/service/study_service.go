package service

import (
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
	"studytrack_backend/internal/util"
)

// StudyService records Pomodoro-style timer sessions. Sessions do not touch
// the streak or achievements; only module-status updates do.
type StudyService struct {
	SessionRepo *repository.StudySessionRepository
	UserRepo    *repository.UserRepository
	Feed        *FeedService

	loc *time.Location
	now func() time.Time
}

func NewStudyService(sessionRepo *repository.StudySessionRepository, userRepo *repository.UserRepository, feed *FeedService) *StudyService {
	return &StudyService{
		SessionRepo: sessionRepo,
		UserRepo:    userRepo,
		Feed:        feed,
		loc:         time.Local,
		now:         time.Now,
	}
}

// LogSession stores one finished timer interval. Focus minutes accumulate
// into the user's total study time; breaks are history only.
func (s *StudyService) LogSession(userID uint, duration int, mode model.SessionMode) (*model.StudySession, error) {
	if duration <= 0 {
		return nil, util.ErrInvalidSession
	}
	if mode != model.ModeFocus && mode != model.ModeBreak {
		return nil, util.ErrInvalidSession
	}

	session := &model.StudySession{
		UserID:   userID,
		Date:     s.now(),
		Duration: duration,
		Mode:     mode,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}

	if mode == model.ModeFocus {
		if err := s.UserRepo.AddStudyTime(userID, duration); err != nil {
			return nil, err
		}
	}

	if s.Feed != nil {
		s.Feed.Publish(FeedEvent{
			Type:      EventSessionLogged,
			UserID:    userID,
			Timestamp: session.Date,
		})
	}

	return session, nil
}

type StudyHistory struct {
	Sessions       []model.StudySession `json:"sessions"`
	TotalSessions  int64                `json:"totalSessions"`
	TotalStudyTime int                  `json:"totalStudyTime"` // minutes
}

func (s *StudyService) GetHistory(userID uint, limit int) (*StudyHistory, error) {
	sessions, err := s.SessionRepo.FindByUser(userID, limit)
	if err != nil {
		return nil, err
	}

	count, err := s.SessionRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &StudyHistory{
		Sessions:       sessions,
		TotalSessions:  count,
		TotalStudyTime: user.TotalStudyTime,
	}, nil
}

type StudyStats struct {
	TotalStudyTime int   `json:"totalStudyTime"` // minutes, lifetime
	FocusToday     int64 `json:"focusToday"`     // minutes
	FocusThisWeek  int64 `json:"focusThisWeek"`  // minutes
}

func (s *StudyService) GetStats(userID uint) (*StudyStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	today, err := s.SessionRepo.SumFocusSince(userID, midnight)
	if err != nil {
		return nil, err
	}

	week, err := s.SessionRepo.SumFocusSince(userID, StartOfWeek(now, s.loc))
	if err != nil {
		return nil, err
	}

	return &StudyStats{
		TotalStudyTime: user.TotalStudyTime,
		FocusToday:     today,
		FocusThisWeek:  week,
	}, nil
}
