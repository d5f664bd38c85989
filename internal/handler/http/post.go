package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/app"
	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listPosts", err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getPost", err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getPost", err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, "*Handler.createPost", ErrNoUserInContext)
		return
	}

	var input models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, "*Handler.createPost", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.PostService.CreatePost(ctx, userID, input)
	if err != nil {
		writeError(w, r, "*Handler.createPost", err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", created.ID).Int64("user_id", userID).Msg("post created")
	utils.WriteJSON(w, models.PostResponse{Message: app.MsgBlogCreated, Blog: created}, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updatePost", err)
		return
	}

	var input models.PostInput
	if err = json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, "*Handler.updatePost", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if _, err = h.services.PostService.UpdatePost(r.Context(), id, input); err != nil {
		writeError(w, r, "*Handler.updatePost", err)
		return
	}

	utils.WriteMessage(w, app.MsgBlogUpdated, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deletePost", err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deletePost", err)
		return
	}

	utils.WriteMessage(w, app.MsgBlogDeleted, http.StatusOK)
}
