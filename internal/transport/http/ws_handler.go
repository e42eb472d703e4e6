package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"jobsim-assessment-service/internal/app"
	"jobsim-assessment-service/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler drives one assessment attempt per websocket connection.
type WSHandler struct {
	service  *app.AssessmentService
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AssessmentService, logger *zap.Logger) *WSHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Session string `json:"session"`
	Company string `json:"company"`
	Role    string `json:"role"`
	Tier    string `json:"tier"`
}

type selectPayload struct {
	Option int `json:"option"`
}

type questionPayload struct {
	AttemptID        string           `json:"attemptId"`
	Index            int              `json:"index"`
	Total            int              `json:"total"`
	SecondsRemaining int              `json:"secondsRemaining"`
	Question         app.QuestionView `json:"question"`
}

type resultPayload struct {
	PercentageScore int      `json:"percentageScore"`
	Cutoff          int      `json:"cutoff"`
	Passed          bool     `json:"passed"`
	IncorrectCount  int      `json:"incorrectCount"`
	Topics          []string `json:"topics,omitempty"`
}

type blockedPayload struct {
	SecondsRemaining int                   `json:"secondsRemaining"`
	Entry            *domain.CooldownEntry `json:"entry,omitempty"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the attempt protocol until the client
// disconnects. Disconnecting mid-attempt abandons it without persistence.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Query params give the host-page defaults; the start payload can override.
	defaults := startPayload{
		Session: r.URL.Query().Get("session"),
		Company: r.URL.Query().Get("company"),
		Role:    r.URL.Query().Get("role"),
		Tier:    r.URL.Query().Get("tier"),
	}

	var attemptID string
	defer func() {
		if attemptID != "" {
			h.service.Abandon(attemptID)
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "start":
			payload := defaults
			if len(inbound.Payload) > 0 {
				var override startPayload
				if err := json.Unmarshal(inbound.Payload, &override); err != nil {
					h.write(conn, "error", errorPayload{Message: "invalid start payload"})
					continue
				}
				payload = merge(defaults, override)
			}

			progress, status, err := h.service.Start(r.Context(), payload.Session, payload.Company, payload.Role, payload.Tier)
			if errors.Is(err, domain.ErrCooldownActive) {
				h.write(conn, "blocked", blockedPayload{
					SecondsRemaining: int(status.Remaining / time.Second),
					Entry:            status.Entry,
				})
				continue
			}
			if err != nil {
				h.write(conn, "error", errorPayload{Message: err.Error()})
				continue
			}
			attemptID = progress.AttemptID
			h.writeProgress(conn, progress)

		case "select":
			var payload selectPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.write(conn, "error", errorPayload{Message: "invalid select payload"})
				continue
			}
			progress, err := h.service.SelectOption(r.Context(), attemptID, payload.Option)
			if err != nil {
				h.write(conn, "error", errorPayload{Message: err.Error()})
				continue
			}
			if progress.Done {
				attemptID = ""
			}
			h.writeProgress(conn, progress)

		case "advance":
			progress, err := h.service.Advance(r.Context(), attemptID)
			if err != nil {
				h.write(conn, "error", errorPayload{Message: err.Error()})
				continue
			}
			if progress.Done {
				attemptID = ""
			}
			h.writeProgress(conn, progress)

		case "quit":
			if attemptID != "" {
				h.service.Abandon(attemptID)
				attemptID = ""
			}
			return

		default:
			h.write(conn, "error", errorPayload{Message: "unsupported message type"})
		}
	}
}

func (h *WSHandler) writeProgress(conn *websocket.Conn, progress *app.Progress) {
	if progress.Result != nil {
		out := progress.Result.Outcome
		h.write(conn, "result", resultPayload{
			PercentageScore: out.PercentageScore,
			Cutoff:          out.Cutoff,
			Passed:          out.Passed,
			IncorrectCount:  out.IncorrectCount,
			Topics:          progress.Result.Topics,
		})
		return
	}
	h.write(conn, "question", questionPayload{
		AttemptID:        progress.AttemptID,
		Index:            progress.Index,
		Total:            progress.Total,
		SecondsRemaining: int(progress.TimeRemaining / time.Second),
		Question:         progress.Question,
	})
}

func (h *WSHandler) write(conn *websocket.Conn, msgType string, payload any) {
	if err := conn.WriteJSON(outboundMessage[any]{Type: msgType, Payload: payload}); err != nil {
		h.logger.Warn("ws write failed", zap.Error(err))
	}
}

func merge(base, override startPayload) startPayload {
	if override.Session != "" {
		base.Session = override.Session
	}
	if override.Company != "" {
		base.Company = override.Company
	}
	if override.Role != "" {
		base.Role = override.Role
	}
	if override.Tier != "" {
		base.Tier = override.Tier
	}
	return base
}
