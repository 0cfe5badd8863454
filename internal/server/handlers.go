package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/cabanahq/sandbox/internal/api"
	"github.com/cabanahq/sandbox/internal/fixtures"
	"github.com/cabanahq/sandbox/internal/model"
	"github.com/cabanahq/sandbox/internal/store"
)

// decode parses a JSON request body into v. A failure is reported to the
// client and the handler should return immediately.
func (s *Server) decode(w http.ResponseWriter, req *http.Request, v interface{}) bool {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		writeError(s.log, w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"users":  s.store.CountUsers(),
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Config())
}

func (s *Server) handleSetConfig(w http.ResponseWriter, req *http.Request) {
	var patch api.ConfigPatch
	if !s.decode(w, req, &patch) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.SetConfig(patch))
}

// handleReset rebuilds the fixture graph. An explicit seed query parameter
// overrides the one the server started with.
func (s *Server) handleReset(w http.ResponseWriter, req *http.Request) {
	seed := fixtures.DefaultSeed
	if raw := req.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(s.log, w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		seed = parsed
	}
	fixtures.Seed(s.store, seed)
	s.log.Info().Int64("seed", seed).Msg("demo data reset")
	writeJSON(s.log, w, http.StatusOK, map[string]interface{}{
		"success": true,
		"seed":    seed,
		"users":   s.store.CountUsers(),
	})
}

func (s *Server) handlePersonas(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, map[string]interface{}{
		"personas":    fixtures.Personas(),
		"credentials": fixtures.DemoCredentials(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.store.Export())
}

func (s *Server) handleImport(w http.ResponseWriter, req *http.Request) {
	var snap store.Snapshot
	if !s.decode(w, req, &snap) {
		return
	}
	s.store.Import(snap)
	s.log.Info().Int("users", s.store.CountUsers()).Msg("state imported")
	writeJSON(s.log, w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   s.store.CountUsers(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.Login(req.Context(), in.Email, in.Password))
}

func (s *Server) handleSignup(w http.ResponseWriter, req *http.Request) {
	var in api.SignupInput
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.Signup(req.Context(), in))
}

func (s *Server) handleLogout(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Logout(req.Context()))
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, req *http.Request) {
	token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
	writeJSON(s.log, w, http.StatusOK, s.api.CurrentUser(req.Context(), token))
}

func (s *Server) handleGetUser(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.GetUser(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, req *http.Request) {
	var in api.ProfileUpdate
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.UpdateProfile(req.Context(), callerID(req), in))
}

func (s *Server) handleCreators(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Creators(req.Context()))
}

func (s *Server) handleFeed(w http.ResponseWriter, req *http.Request) {
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(req.URL.Query().Get("pageSize"))
	writeJSON(s.log, w, http.StatusOK, s.api.Feed(req.Context(), callerID(req), page, pageSize))
}

func (s *Server) handleGetPost(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.GetPost(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handlePostsByCreator(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.PostsByCreator(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, req *http.Request) {
	var in api.PostInput
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.CreatePost(req.Context(), callerID(req), in))
}

func (s *Server) handleDeletePost(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.DeletePost(req.Context(), callerID(req), mux.Vars(req)["id"]))
}

func (s *Server) handleToggleLike(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.ToggleLike(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleComments(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Comments(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleAddComment(w http.ResponseWriter, req *http.Request) {
	var in struct {
		Content string `json:"content"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK,
		s.api.AddComment(req.Context(), mux.Vars(req)["id"], callerID(req), in.Content))
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.DeleteComment(req.Context(), callerID(req), mux.Vars(req)["id"]))
}

func (s *Server) handleMySubscriptions(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.MySubscriptions(req.Context(), callerID(req)))
}

func (s *Server) handleSubscribers(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Subscribers(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleSubscribe(w http.ResponseWriter, req *http.Request) {
	var in struct {
		CreatorID string     `json:"creatorId"`
		Tier      model.Tier `json:"tier"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK, s.api.Subscribe(req.Context(), callerID(req), in.CreatorID, in.Tier))
}

func (s *Server) handleCancelSubscription(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK,
		s.api.CancelSubscription(req.Context(), callerID(req), mux.Vars(req)["id"]))
}

func (s *Server) handleTransactions(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Transactions(req.Context(), callerID(req)))
}

func (s *Server) handleSendTip(w http.ResponseWriter, req *http.Request) {
	var in struct {
		ToUserID string  `json:"toUserId"`
		Amount   float64 `json:"amount"`
		Message  string  `json:"message"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK,
		s.api.SendTip(req.Context(), callerID(req), in.ToUserID, in.Amount, in.Message))
}

func (s *Server) handleConversations(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Conversations(req.Context(), callerID(req)))
}

func (s *Server) handleStartConversation(w http.ResponseWriter, req *http.Request) {
	var in struct {
		UserID string `json:"userId"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK,
		s.api.StartConversation(req.Context(), []string{callerID(req), in.UserID}))
}

func (s *Server) handleMessages(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Messages(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, req *http.Request) {
	var in struct {
		Content string `json:"content"`
	}
	if !s.decode(w, req, &in) {
		return
	}
	writeJSON(s.log, w, http.StatusOK,
		s.api.SendMessage(req.Context(), mux.Vars(req)["id"], callerID(req), in.Content))
}

func (s *Server) handleMarkConversationRead(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK,
		s.api.MarkConversationRead(req.Context(), mux.Vars(req)["id"], callerID(req)))
}

func (s *Server) handleNotifications(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.Notifications(req.Context(), callerID(req)))
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.MarkNotificationRead(req.Context(), mux.Vars(req)["id"]))
}

func (s *Server) handleMarkAllNotificationsRead(w http.ResponseWriter, req *http.Request) {
	writeJSON(s.log, w, http.StatusOK, s.api.MarkAllNotificationsRead(req.Context(), callerID(req)))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, req *http.Request) {
	period := model.Period(req.URL.Query().Get("period"))
	if period == "" {
		period = model.PeriodMonth
	}
	writeJSON(s.log, w, http.StatusOK,
		s.api.CreatorAnalytics(req.Context(), mux.Vars(req)["id"], period))
}
