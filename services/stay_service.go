package services

import (
	"context"
	"time"

	"mysterystays/cache"
	"mysterystays/dto"
	"mysterystays/models"
	"mysterystays/services/logger"
	"mysterystays/services/notification"
	"mysterystays/validator"
)

const (
	propertiesCacheKey = "properties:all"
	cacheTTL           = 10 * time.Minute
)

func preferenceCacheKey(userID string) string {
	return "preferences:" + userID
}

// StayService lists discounted properties, matches them to users and books mystery stays.
type StayService struct {
	store    Store
	cache    cache.Cache
	logger   logger.Logger
	notifier notification.Service
	now      func() time.Time
}

type StayServiceOptions struct {
	Store    Store
	Cache    cache.Cache          // optional
	Logger   logger.Logger        // optional
	Notifier notification.Service // optional
	Now      func() time.Time     // optional
}

func NewStayService(opts StayServiceOptions) *StayService {
	s := &StayService{
		store:    opts.Store,
		cache:    opts.Cache,
		logger:   opts.Logger,
		notifier: opts.Notifier,
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = logger.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// AddProperty lists a vacant property at the standard discount and returns its id.
func (s *StayService) AddProperty(ctx context.Context, req dto.PropertyRequest) (string, error) {
	if err := validator.ValidateProperty(&req); err != nil {
		return "", err
	}

	property := &models.Property{
		Name:          req.Name,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.OriginalPrice * models.DiscountRate,
		Amenities:     req.Amenities,
		Bedrooms:      req.Bedrooms,
		Location:      req.Location,
		Address:       req.Address,
		Directions:    req.Directions,
	}
	if err := s.store.CreateProperty(ctx, property); err != nil {
		return "", err
	}
	s.invalidate(ctx, propertiesCacheKey)

	s.logger.Info("property %s added: %s at %.2f", property.ID, property.Name, property.DiscountPrice)
	return property.ID, nil
}

// RegisterPreferences stores or replaces a user's preferences.
func (s *StayService) RegisterPreferences(ctx context.Context, req dto.RegisterPreferencesRequest) error {
	if err := validator.ValidatePreferences(&req); err != nil {
		return err
	}

	pref := &models.Preference{
		UserID:    req.UserID,
		Amenities: req.Preferences.Amenities,
		PriceMax:  req.Preferences.PriceMax,
		Bedrooms:  req.Preferences.Bedrooms,
	}
	if err := s.store.SavePreference(ctx, pref); err != nil {
		return err
	}
	s.remember(ctx, preferenceCacheKey(pref.UserID), pref)

	s.logger.Info("preferences registered for %s", pref.UserID)
	return nil
}

// Match returns the properties that satisfy the user's preferences, location hidden.
// A user without preferences gets an empty list.
func (s *StayService) Match(ctx context.Context, userID string) ([]dto.MatchedProperty, error) {
	pref, err := s.preference(ctx, userID)
	if err != nil {
		return nil, err
	}
	matches := make([]dto.MatchedProperty, 0)
	if pref == nil {
		return matches, nil
	}

	properties, err := s.properties(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range properties {
		if MatchesPreference(p, *pref) {
			matches = append(matches, dto.ToMatchedProperty(p))
		}
	}

	s.logger.Debug("user %s matched %d of %d properties", userID, len(matches), len(properties))
	return matches, nil
}

func (s *StayService) preference(ctx context.Context, userID string) (*models.Preference, error) {
	var cached models.Preference
	if s.lookup(ctx, preferenceCacheKey(userID), &cached) {
		return &cached, nil
	}
	pref, err := s.store.GetPreference(ctx, userID)
	if err != nil || pref == nil {
		return pref, err
	}
	s.remember(ctx, preferenceCacheKey(userID), pref)
	return pref, nil
}

func (s *StayService) properties(ctx context.Context) ([]models.Property, error) {
	var cached []models.Property
	if s.lookup(ctx, propertiesCacheKey, &cached) {
		return cached, nil
	}
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, propertiesCacheKey, properties)
	return properties, nil
}

// Cache errors are logged and fall through to the store.

func (s *StayService) lookup(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, target)
	if err != nil {
		s.logger.Error("cache get %s: %v", key, err)
		return false
	}
	return found
}

func (s *StayService) remember(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, cacheTTL); err != nil {
		s.logger.Error("cache set %s: %v", key, err)
	}
}

func (s *StayService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Error("cache delete %s: %v", key, err)
	}
}
