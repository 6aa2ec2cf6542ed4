package serving

import (
	"encoding/json"
	"strings"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/payload"
	"github.com/Meesho/BharatMLStack/tabflow/handlers/schema"
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/executor"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/inmemorycache"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/logger"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/metrics"
	"github.com/spaolacci/murmur3"
)

var servingHandler *Handler

// Handler runs the request/response conversion pipeline. It holds no per-request
// state; everything mutable lives on the stack of each call, so one instance
// serves concurrent requests.
type Handler struct {
	transformer   executor.Transformer
	resolver      *schema.Resolver
	defaultAccept string
	cache         inmemorycache.InMemoryCache
	cacheTTL      int
}

// InitServingHandler wires the pipeline with its collaborators. The transformer
// is the injected model-executor capability; the prediction cache is attached
// only when enabled in config.
func InitServingHandler(appConfigs *configs.AppConfigs, transformer executor.Transformer) {
	servingHandler = &Handler{
		transformer:   transformer,
		resolver:      schema.NewResolver(appConfigs),
		defaultAccept: appConfigs.Configs.DefaultInvocationsAccept,
	}
	if appConfigs.Configs.PredictionCacheEnabled {
		servingHandler.cache = inmemorycache.Instance()
		servingHandler.cacheTTL = appConfigs.Configs.PredictionCacheTTL
	}
	logger.Info("Serving handler initialized")
}

// Instance returns the serving handler. InitServingHandler must run first.
func Instance() *Handler {
	if servingHandler == nil {
		logger.Panic("serving handler not initialized, call InitServingHandler first", nil)
	}
	return servingHandler
}

// NewHandler builds a standalone handler, bypassing the package singleton.
// Intended for tests that need their own transformer or config.
func NewHandler(appConfigs *configs.AppConfigs, transformer executor.Transformer) *Handler {
	return &Handler{
		transformer:   transformer,
		resolver:      schema.NewResolver(appConfigs),
		defaultAccept: appConfigs.Configs.DefaultInvocationsAccept,
	}
}

// ProcessJSON handles a single-record JSON envelope end to end.
func (h *Handler) ProcessJSON(body []byte, acceptHeader string) (*ResponseUnit, error) {
	accept, err := h.ResolveAccept(acceptHeader)
	if err != nil {
		return nil, err
	}
	env, err := payload.ParseJSON(body)
	if err != nil {
		return nil, err
	}
	sch, err := h.resolver.Resolve(env.Schema)
	if err != nil {
		return nil, err
	}
	units, err := h.processRecords([]payload.RawRecord{env.Data}, sch, accept)
	if err != nil {
		return nil, err
	}
	return units[0], nil
}

// ProcessCSV handles delimited-text rows. The schema always comes from process
// configuration for this format. Multi-row input yields one response line per
// row, newline-joined in input order.
func (h *Handler) ProcessCSV(body []byte, acceptHeader string) (*ResponseUnit, error) {
	accept, err := h.ResolveAccept(acceptHeader)
	if err != nil {
		return nil, err
	}
	sch, err := h.resolver.Resolve(nil)
	if err != nil {
		return nil, err
	}
	records, err := payload.ParseCSV(body, sch)
	if err != nil {
		return nil, err
	}
	units, err := h.processRecords(records, sch, accept)
	if err != nil {
		return nil, err
	}
	if len(units) == 1 {
		return units[0], nil
	}
	bodies := make([]string, len(units))
	for i, unit := range units {
		bodies[i] = unit.Body
	}
	return &ResponseUnit{Body: strings.Join(bodies, "\n"), ContentType: units[0].ContentType}, nil
}

// processRecords runs the single-record pipeline for each raw record, in order.
// All records share one schema and accept value. Any failure aborts the set.
func (h *Handler) processRecords(records []payload.RawRecord, sch *schema.Schema, accept string) ([]*ResponseUnit, error) {
	fingerprint, err := json.Marshal(sch)
	if err != nil {
		return nil, err
	}

	units := make([]*ResponseUnit, 0, len(records))
	for _, record := range records {
		unit, err := h.processRecord(record, sch, fingerprint, accept)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

func (h *Handler) processRecord(record payload.RawRecord, sch *schema.Schema, fingerprint []byte, accept string) (*ResponseUnit, error) {
	key, keyed := h.cacheKey(fingerprint, accept, record)
	if keyed {
		if cached, err := h.cache.Get(key); err == nil {
			metrics.Count("serving.prediction.cache.hit", 1, nil)
			return &ResponseUnit{Body: string(cached), ContentType: accept}, nil
		}
		metrics.Count("serving.prediction.cache.miss", 1, nil)
	}

	frame, err := toFrame(record, sch)
	if err != nil {
		return nil, err
	}

	outFrame, err := h.transformer.Transform(frame)
	if err != nil {
		return nil, &errors.ExecutorError{ErrorMsg: err.Error()}
	}
	value, err := outFrame.ValueOf(sch.Output.Name)
	if err != nil {
		return nil, &errors.ExecutorError{ErrorMsg: err.Error()}
	}

	unit, err := renderResponse(value, sch.Output, accept)
	if err != nil {
		return nil, err
	}

	if keyed {
		if err := h.cache.SetEx(key, []byte(unit.Body), h.cacheTTL); err != nil {
			logger.Error("prediction cache set failed", err)
		}
	}
	return unit, nil
}

// cacheKey builds a murmur3 digest over the schema fingerprint, the accept
// value, and the record's canonical JSON form. Returns keyed=false when the
// cache is disabled or the record cannot be canonicalized.
func (h *Handler) cacheKey(fingerprint []byte, accept string, record payload.RawRecord) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, false
	}
	hasher := murmur3.New128()
	hasher.Write(fingerprint)
	hasher.Write([]byte(accept))
	hasher.Write(recordJSON)
	return hasher.Sum(nil), true
}
