package interceptor

import (
	"net/http"
	"regexp"

	"github.com/iudanet/gophsync/internal/models"
)

// QueueRule разрешает поставить мутирующий запрос в очередь, если сеть недоступна.
// Первая группа Pattern, если есть, содержит id сущности и попадает в payload как "id".
type QueueRule struct {
	Pattern *regexp.Regexp
	Method  string
	Type    models.ActionType
}

// DefaultRules белый список ресурсов, которые можно изменять офлайн
func DefaultRules() []QueueRule {
	return []QueueRule{
		{Method: http.MethodPost, Pattern: regexp.MustCompile(`^/api/v1/messages/?$`), Type: models.ActionCreateMessage},
		{Method: http.MethodPatch, Pattern: regexp.MustCompile(`^/api/v1/dossiers/([^/]+)/status/?$`), Type: models.ActionUpdateStatus},
		{Method: http.MethodPost, Pattern: regexp.MustCompile(`^/api/v1/appointments/?$`), Type: models.ActionCreateAppointment},
		{Method: http.MethodPut, Pattern: regexp.MustCompile(`^/api/v1/appointments/([^/]+)/?$`), Type: models.ActionUpdateAppointment},
		{Method: http.MethodPost, Pattern: regexp.MustCompile(`^/api/v1/notes/?$`), Type: models.ActionCreateNote},
	}
}

// DefaultBypass эндпоинты, которые всегда идут напрямую
func DefaultBypass() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`^/health(/|$)`),
		regexp.MustCompile(`^/metrics(/|$)`),
		regexp.MustCompile(`^/ready(/|$)`),
	}
}

// match возвращает правило и id сущности из пути
func match(rules []QueueRule, method, path string) (*QueueRule, string, bool) {
	for i := range rules {
		r := &rules[i]
		if r.Method != method {
			continue
		}
		m := r.Pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		id := ""
		if len(m) > 1 {
			id = m[1]
		}
		return r, id, true
	}
	return nil, "", false
}

func bypassed(patterns []*regexp.Regexp, path string) bool {
	for _, p := range patterns {
		if p.MatchString(path) {
			return true
		}
	}
	return false
}
