package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"mediastudio/internal/i18n"
	"mediastudio/internal/media"
	"mediastudio/internal/middleware"
	"mediastudio/internal/studio"
)

const (
	streamWriteWait = 10 * time.Second
	streamReadLimit = 64 << 10
)

type streamEvent struct {
	Type     string      `json:"type"`
	Stage    media.Stage `json:"stage,omitempty"`
	Attempt  int         `json:"attempt,omitempty"`
	Message  string      `json:"message,omitempty"`
	MediaRef string      `json:"media_ref,omitempty"`
	Error    *errorBody  `json:"error,omitempty"`
}

// VideosGenerate runs a video job inside the request. The write deadline is
// pushed past the job timeout so the long poll is not cut off by the server.
func (a *App) VideosGenerate(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	ctx, cancel := a.videoContext(r.Context())
	defer cancel()
	if a.VideoTimeout > 0 {
		rc := http.NewResponseController(w)
		if err := rc.SetWriteDeadline(time.Now().Add(a.VideoTimeout + time.Minute)); err != nil {
			a.Logger.Debug().Err(err).Msg("extend write deadline")
		}
	}

	ref, err := a.Studio.GenerateVideo(ctx, locale, req.Prompt)
	if errors.Is(err, context.Canceled) {
		a.Logger.Info().Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("client left before the video was ready")
		return
	}
	if err != nil {
		a.viewError(w, err)
		return
	}
	a.json(w, http.StatusOK, mediaResponse{MediaRef: ref})
}

// VideoStream runs a video job over a websocket. The client sends one
// {"prompt": "..."} message and receives progress events followed by a result
// or an error event. Closing the socket cancels the job.
func (a *App) VideoStream(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     a.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(streamReadLimit)

	var req promptRequest
	if err := conn.ReadJSON(&req); err != nil {
		a.Logger.Debug().Err(err).Msg("websocket closed before a prompt arrived")
		return
	}

	ctx, cancel := a.videoContext(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	send := func(ev streamEvent) {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(ev); err != nil {
			a.Logger.Debug().Err(err).Msg("websocket write failed")
			cancel()
		}
	}

	loading := i18n.LoadingMessages(locale)
	sent := 0
	ctx = media.WithProgress(ctx, func(p media.Progress) {
		send(streamEvent{Type: "progress", Stage: p.Stage, Attempt: p.Attempt, Message: loading[sent%len(loading)]})
		sent++
	})

	ref, err := a.Studio.GenerateVideo(ctx, locale, req.Prompt)
	var ve *studio.ViewError
	switch {
	case err == nil:
		send(streamEvent{Type: "result", MediaRef: ref})
	case errors.As(err, &ve):
		body := envelopeFor(ve).Error
		send(streamEvent{Type: "error", Error: &body})
	case errors.Is(err, context.Canceled):
		a.Logger.Info().Msg("video stream cancelled by client")
		return
	default:
		a.Logger.Error().Err(err).Msg("video stream failed")
		send(streamEvent{Type: "error", Error: &errorBody{Code: "internal", Message: i18n.T(locale, i18n.MsgUnexpected)}})
	}

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (a *App) videoContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.VideoTimeout > 0 {
		return context.WithTimeout(parent, a.VideoTimeout)
	}
	return context.WithCancel(parent)
}

// checkOrigin accepts same-host pages and the configured CORS origins.
func (a *App) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range a.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}
