package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qwadratic/notes-api/internal/core/domain"
	"github.com/qwadratic/notes-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. All routes require
// the auth middleware; the owner is always the authenticated user.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.CreatePost(c.Request().Context(), user.ID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPostResponse(*post))
}

// List handles GET /posts — all posts of the authenticated user, in creation order.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  postListResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListPosts(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := postListResponse{Posts: make([]postResponse, 0, len(posts))}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete an own post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{ID: p.ID, Text: p.Text, OwnerID: p.OwnerID}
}
