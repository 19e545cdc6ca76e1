package conflict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/iudanet/gophsync/internal/models"
)

//go:generate moq -out fetcher_mock.go . EntityFetcher
//go:generate moq -out resolver_mock.go . Resolver

// Strategy политика разрешения конфликта
type Strategy string

const (
	StrategyServerWins Strategy = "SERVER_WINS"
	StrategyClientWins Strategy = "CLIENT_WINS"
	StrategyMerge      Strategy = "MERGE"
	StrategyManual     Strategy = "MANUAL"
)

// ErrUnknownStrategy is returned for a strategy name outside the known set.
var ErrUnknownStrategy = errors.New("unknown conflict strategy")

// systemFields never take part in field comparison.
var systemFields = map[string]struct{}{
	"id":        {},
	"createdAt": {},
	"updatedAt": {},
	"version":   {},
	"orgId":     {},
	"createdBy": {},
	"updatedBy": {},
}

// IsValid reports whether s is one of the known strategies.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyServerWins, StrategyClientWins, StrategyMerge, StrategyManual:
		return true
	}
	return false
}

// ParseStrategy converts a user supplied name (case-insensitive) into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToUpper(strings.TrimSpace(name)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// EntityFetcher загружает текущую серверную версию сущности, которую изменяет действие.
// (nil, nil) означает, что сущность не найдена или действие ничего не изменяет на сервере.
type EntityFetcher interface {
	FetchEntity(ctx context.Context, action *models.QueuedAction) (map[string]any, error)
}

// ConflictInfo расхождение между намерением клиента и состоянием сервера
type ConflictInfo struct {
	Action     *models.QueuedAction `json:"action"`
	ServerData map[string]any       `json:"serverData"`
	ClientData map[string]any       `json:"clientData"`
	Fields     []string             `json:"fields"` // отсортированные имена конфликтующих полей
}

// MergeResult результат применения стратегии
type MergeResult struct {
	MergedData       map[string]any  `json:"mergedData"`
	Strategy         Strategy        `json:"strategy"`
	UnresolvedFields []string        `json:"unresolvedFields,omitempty"`
	Conflicts        []*ConflictInfo `json:"conflicts,omitempty"`
	Resolved         bool            `json:"resolved"`
}

// Resolver определяет интерфейс разрешения конфликтов
type Resolver interface {
	// DetectConflict сравнивает payload действия с серверной версией сущности.
	// Возвращает nil, если конфликта нет.
	DetectConflict(ctx context.Context, action *models.QueuedAction) (*ConflictInfo, error)

	// Resolve применяет стратегию; пустая стратегия означает стратегию по умолчанию
	Resolve(conflict *ConflictInfo, strategy Strategy) (*MergeResult, error)

	ResolveBatch(conflicts []*ConflictInfo, strategy Strategy) ([]*MergeResult, error)

	SetDefaultStrategy(strategy Strategy) error
	DefaultStrategy() Strategy
}

type resolver struct {
	fetcher  EntityFetcher
	logger   *slog.Logger
	strategy Strategy
	mu       sync.RWMutex
}

var _ Resolver = (*resolver)(nil)

// NewResolver creates a resolver with SERVER_WINS as the default strategy.
func NewResolver(fetcher EntityFetcher, logger *slog.Logger) Resolver {
	return &resolver{
		fetcher:  fetcher,
		logger:   logger,
		strategy: StrategyServerWins,
	}
}

func (r *resolver) SetDefaultStrategy(strategy Strategy) error {
	if !strategy.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	r.mu.Lock()
	r.strategy = strategy
	r.mu.Unlock()
	return nil
}

func (r *resolver) DefaultStrategy() Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.strategy
}

func (r *resolver) DetectConflict(ctx context.Context, action *models.QueuedAction) (*ConflictInfo, error) {
	if action == nil {
		return nil, errors.New("action is nil")
	}
	if action.Type.IsCreation() {
		return nil, nil
	}

	serverData, err := r.fetcher.FetchEntity(ctx, action)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch server entity: %w", err)
	}
	if serverData == nil {
		return nil, nil
	}

	clientData, err := models.PayloadFields(action.Payload)
	if err != nil {
		return nil, err
	}

	fields := compareData(serverData, clientData)
	if len(fields) == 0 {
		return nil, nil
	}

	r.logger.Debug("Conflict detected",
		"action_id", action.ID,
		"type", action.Type,
		"fields", fields)

	return &ConflictInfo{
		Action:     action,
		ServerData: serverData,
		ClientData: clientData,
		Fields:     fields,
	}, nil
}

func (r *resolver) Resolve(conflict *ConflictInfo, strategy Strategy) (*MergeResult, error) {
	if conflict == nil {
		return nil, errors.New("conflict is nil")
	}
	if strategy == "" {
		strategy = r.DefaultStrategy()
	}

	switch strategy {
	case StrategyServerWins:
		return &MergeResult{
			Resolved:   true,
			Strategy:   strategy,
			MergedData: cloneMap(conflict.ServerData),
		}, nil

	case StrategyClientWins:
		return &MergeResult{
			Resolved:   true,
			Strategy:   strategy,
			MergedData: cloneMap(conflict.ClientData),
		}, nil

	case StrategyMerge:
		return mergeFields(conflict), nil

	case StrategyManual:
		return &MergeResult{
			Resolved:         false,
			Strategy:         strategy,
			UnresolvedFields: append([]string(nil), conflict.Fields...),
			Conflicts:        []*ConflictInfo{conflict},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

func (r *resolver) ResolveBatch(conflicts []*ConflictInfo, strategy Strategy) ([]*MergeResult, error) {
	results := make([]*MergeResult, 0, len(conflicts))
	for _, c := range conflicts {
		res, err := r.Resolve(c, strategy)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// mergeFields начинает с серверной версии и пытается слить каждое конфликтующее поле.
// Несливаемое поле остается серверным и попадает в UnresolvedFields.
func mergeFields(conflict *ConflictInfo) *MergeResult {
	merged := cloneMap(conflict.ServerData)
	if merged == nil {
		merged = make(map[string]any)
	}

	var unresolved []string
	for _, field := range conflict.Fields {
		serverValue := conflict.ServerData[field]
		clientValue := conflict.ClientData[field]

		value, ok := mergeValues(serverValue, clientValue)
		if !ok {
			unresolved = append(unresolved, field)
			continue
		}
		merged[field] = value
	}

	result := &MergeResult{
		Resolved:         len(unresolved) == 0,
		Strategy:         StrategyMerge,
		MergedData:       merged,
		UnresolvedFields: unresolved,
	}
	if !result.Resolved {
		result.Conflicts = []*ConflictInfo{conflict}
	}
	return result
}

// mergeValues returns the automatically merged value, or false when the pair is not
// safely mergeable.
func mergeValues(serverValue, clientValue any) (any, bool) {
	switch sv := serverValue.(type) {
	case []any:
		cv, ok := clientValue.([]any)
		if !ok {
			return nil, false
		}
		return unionArrays(sv, cv), true

	case string:
		cv, ok := clientValue.(string)
		if !ok {
			return nil, false
		}
		switch {
		case strings.Contains(cv, sv):
			return cv, true
		case strings.Contains(sv, cv):
			return sv, true
		}
	}
	return nil, false
}

// unionArrays серверные элементы, затем новые клиентские; дубликаты по глубокому равенству отбрасываются
func unionArrays(server, client []any) []any {
	out := make([]any, 0, len(server)+len(client))
	for _, items := range [][]any{server, client} {
		for _, item := range items {
			if !containsValue(out, item) {
				out = append(out, cloneValue(item))
			}
		}
	}
	return out
}

func containsValue(items []any, v any) bool {
	for _, item := range items {
		if valuesEqual(item, v) {
			return true
		}
	}
	return false
}

// compareData возвращает отсортированный список полей, различающихся между сторонами
func compareData(serverData, clientData map[string]any) []string {
	keys := make(map[string]struct{}, len(serverData)+len(clientData))
	for k := range serverData {
		keys[k] = struct{}{}
	}
	for k := range clientData {
		keys[k] = struct{}{}
	}

	var fields []string
	for k := range keys {
		if _, skip := systemFields[k]; skip {
			continue
		}
		if !valuesEqual(serverData[k], clientData[k]) {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return fields
}

// valuesEqual deep equality over decoded JSON values; a missing field equals only null.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
