package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LikithaGatta/PlatePlanner/dto"
	mid "github.com/LikithaGatta/PlatePlanner/internal/middleware"
	"github.com/LikithaGatta/PlatePlanner/services"
)

type ForumHandler struct {
	Svc *services.ForumService
}

// postIDFromParams parses the :id route segment. A malformed hex id cannot
// reference any post, so it is reported the same way as a missing one.
func postIDFromParams(c *fiber.Ctx) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(c.Params("id"))
	return oid, err == nil
}

// List godoc
// @Summary      List the forum
// @Description  Top-level posts newest first, each with its nested replies
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ThreadedPost
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /forum [get]
func (h *ForumHandler) List(c *fiber.Ctx) error {
	posts, err := h.Svc.ListPosts(c.Context())
	if err != nil {
		log.Println("list posts:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to fetch posts"})
	}
	return c.JSON(posts)
}

// Create godoc
// @Summary      Create a post or reply
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostReq  true  "Post payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /forum [post]
func (h *ForumHandler) Create(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if strings.TrimSpace(body.Title) == "" || strings.TrimSpace(body.Content) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "title and content are required"})
	}

	post, err := h.Svc.CreatePost(c.Context(), uid, body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid category"})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrPostNotFound):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "invalid parentId"})
		default:
			log.Println("create post:", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Failed to create post"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Update godoc
// @Summary      Edit a post
// @Description  Partial update of title/content; author only
// @Tags         forum
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID (hex)"
// @Param        data  body      dto.UpdatePostReq  true  "Fields to change"
// @Success      200   {object}  model.Post
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /forum/{id} [put]
func (h *ForumHandler) Update(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	postID, ok := postIDFromParams(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Post not found"})
	}

	var body dto.UpdatePostReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	post, err := h.Svc.EditPost(c.Context(), uid, postID, body)
	if err != nil {
		return forumError(c, err, "Failed to edit post")
	}
	return c.JSON(post)
}

// Delete godoc
// @Summary      Delete a post
// @Description  Removes the post only; replies stay and become orphans
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /forum/{id} [delete]
func (h *ForumHandler) Delete(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	postID, ok := postIDFromParams(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Post not found"})
	}

	if err := h.Svc.DeletePost(c.Context(), uid, postID); err != nil {
		return forumError(c, err, "Failed to delete post")
	}
	return c.JSON(dto.MessageResponse{Message: "Post deleted"})
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Description  Adds the caller to the like set, or removes them if present
// @Tags         forum
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post ID (hex)"
// @Success      200  {object}  dto.LikesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /forum/{id}/like [post]
func (h *ForumHandler) ToggleLike(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	postID, ok := postIDFromParams(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Post not found"})
	}

	likes, err := h.Svc.ToggleLike(c.Context(), uid, postID)
	if err != nil {
		return forumError(c, err, "Failed to toggle like")
	}
	return c.JSON(dto.LikesResponse{Likes: likes})
}

func forumError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Post not found"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Error: "Forbidden"})
	default:
		log.Println("forum:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: fallback})
	}
}
