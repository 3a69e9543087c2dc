package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"sathorn/internal/config"
	"sathorn/internal/geo"
	"sathorn/internal/metrics"
	"sathorn/internal/model"
	"sathorn/internal/repository"
	"sathorn/internal/utils"
)

// SearchService relays free-text queries to the language model
type SearchService struct {
	catalogue repository.Catalogue
	queryLog  repository.QueryLog
	ai        AIClient
	cfg       config.SearchConfig
	logger    *logrus.Logger
}

// NewSearchService creates a new search service
func NewSearchService(
	catalogue repository.Catalogue,
	queryLog repository.QueryLog,
	ai AIClient,
	cfg config.SearchConfig,
	logger *logrus.Logger,
) *SearchService {
	return &SearchService{
		catalogue: catalogue,
		queryLog:  queryLog,
		ai:        ai,
		cfg:       cfg,
		logger:    logger,
	}
}

// aiReply is the JSON shape requested from the model. Pointers tell an
// absent field apart from an empty one. Summary is optional and decoded
// on its own so a malformed one never fails the search.
type aiReply struct {
	Response            *string         `json:"response"`
	RelevantPropertyIDs *[]float64      `json:"relevantPropertyIds"`
	Summary             json.RawMessage `json:"summary"`
}

// Search answers query using the catalogue as context. Empty queries never
// reach the model, and failed or malformed replies are never logged.
func (s *SearchService) Search(ctx context.Context, query string) (*model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return nil, fmt.Errorf("query must not be empty: %w", model.ErrInvalidInput)
	}

	startTime := time.Now()
	properties := s.catalogue.GetAll(ctx)

	var origin *orb.Point
	var nearby []nearbyCandidate
	if p, ok := geo.DetectCoordinates(query); ok {
		origin = &p
		nearby = nearestCandidates(p, properties, s.cfg.NearbyRadiusM, s.cfg.NearbyLimit)
		s.logger.WithFields(logrus.Fields{
			"lat":        p.Lat(),
			"lng":        p.Lon(),
			"candidates": len(nearby),
		}).Debug("Query contains coordinates")
	}

	systemPrompt, err := buildSystemPrompt(properties, origin, nearby)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeInternalError).Inc()
		return nil, fmt.Errorf("%w: %v", model.ErrInternal, err)
	}

	content, err := s.ai.Complete(ctx, systemPrompt, query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return nil, err
	}

	var reply aiReply
	if err := utils.ParseAIJSON(content, &reply); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return nil, fmt.Errorf("malformed model reply: %v: %w", err, model.ErrUpstream)
	}
	if err := validateReply(&reply); err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		return nil, err
	}

	ids := s.knownIDs(properties, *reply.RelevantPropertyIDs)
	result := &model.SearchResult{
		Response:            *reply.Response,
		RelevantPropertyIDs: ids,
		Summary:             s.decodeSummary(reply.Summary),
	}

	s.record(ctx, query, result)

	metrics.SearchRequestsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.SearchHighlightedProperties.Observe(float64(len(ids)))

	s.logger.WithFields(logrus.Fields{
		"query":       query,
		"highlighted": len(ids),
		"took_ms":     time.Since(startTime).Milliseconds(),
	}).Info("AI search completed")

	return result, nil
}

// History returns the most recent successful searches, newest first.
// A non-positive limit selects the default and large limits are capped.
func (s *SearchService) History(ctx context.Context, limit int) ([]model.AIQuery, error) {
	if limit <= 0 {
		limit = s.cfg.HistoryDefaultLimit
	}
	if limit > s.cfg.HistoryMaxLimit {
		limit = s.cfg.HistoryMaxLimit
	}

	records, err := s.queryLog.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInternal, err)
	}
	return records, nil
}

// validateReply checks the required fields of a decoded reply
func validateReply(reply *aiReply) error {
	if reply.Response == nil {
		return fmt.Errorf("model reply has no response field: %w", model.ErrUpstream)
	}
	if reply.RelevantPropertyIDs == nil {
		return fmt.Errorf("model reply has no relevantPropertyIds field: %w", model.ErrUpstream)
	}
	return nil
}

// decodeSummary returns nil for an absent, null or malformed summary
func (s *SearchService) decodeSummary(raw json.RawMessage) *model.SearchSummary {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var summary model.SearchSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		s.logger.WithError(err).Warn("Dropping malformed summary from model reply")
		return nil
	}
	return &summary
}

// knownIDs keeps ids that exist in the catalogue, in reply order without duplicates
func (s *SearchService) knownIDs(properties []model.Property, raw []float64) []int64 {
	known := make(map[int64]struct{}, len(properties))
	for _, p := range properties {
		known[p.ID] = struct{}{}
	}

	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	var dropped []float64
	for _, v := range raw {
		if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
			dropped = append(dropped, v)
			continue
		}
		id := int64(v)
		if _, ok := known[id]; !ok {
			dropped = append(dropped, v)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(dropped) > 0 {
		s.logger.WithField("ids", dropped).Warn("Model returned unknown property ids")
	}
	return ids
}

// record appends the search to the query log. A failed append is logged
// and does not fail the search.
func (s *SearchService) record(ctx context.Context, query string, result *model.SearchResult) {
	encoded, err := json.Marshal(result.RelevantPropertyIDs)
	if err != nil {
		encoded = []byte("[]")
	}

	_, err = s.queryLog.Append(ctx, model.AIQuery{
		Query:       query,
		Response:    result.Response,
		PropertyIDs: string(encoded),
	})
	if err != nil {
		metrics.QueryLogErrorsTotal.Inc()
		s.logger.WithError(err).WithField("query", query).Error("Failed to record AI query")
	}
}
