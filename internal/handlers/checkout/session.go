package checkout

import (
	"encoding/json"
	"net/http"

	"grandhotel/config"
	"grandhotel/internal/workflow"
	"grandhotel/shared/constant"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	sessionName = "grandhotel_checkout"
	keyDraft    = "draft"
	keyLength   = 32
)

// NewStore keeps drafts on disk; the cookie only carries the session id. Govt-ID
// images do not fit in a cookie.
func NewStore(cfg *config.Config) sessions.Store {
	secret := []byte(cfg.App.Checkout.SessionSecret)
	if len(secret) == 0 {
		log.Warn().Msg("checkout session secret is not set, drafts will not survive a restart")

		secret = securecookie.GenerateRandomKey(keyLength)
	}

	store := sessions.NewFilesystemStore(cfg.App.Checkout.SessionDir, secret)
	store.MaxLength(0)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.App.Checkout.MaxAgeSeconds,
		HttpOnly: true,
		Secure:   cfg.Server.Env == constant.ServerEnvProduction,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

func (handler *Handler) session(r *http.Request) *sessions.Session {
	session, err := handler.store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session.
		log.Warn().Err(err).Msg("failed to read checkout session")
	}

	return session
}

func readDraft(session *sessions.Session) (workflow.Draft, bool) {
	raw, ok := session.Values[keyDraft].(string)
	if !ok || raw == constant.Empty {
		return workflow.Draft{}, false
	}

	var draft workflow.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Warn().Err(err).Msg("failed to decode checkout draft")

		return workflow.Draft{}, false
	}

	return draft, true
}

func writeDraft(session *sessions.Session, draft workflow.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	session.Values[keyDraft] = string(raw)

	return nil
}

// view is the draft as shown to the browser, without the uploaded document.
func view(draft workflow.Draft) workflow.Draft {
	draft.Guest.GovtIDData = constant.Empty

	return draft
}
