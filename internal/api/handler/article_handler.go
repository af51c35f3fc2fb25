package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/core/domain"
	"github.com/rbacdash/rbac-api/internal/core/ports"
)

type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

type createArticleRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type articleViewer struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type articleListData struct {
	User     articleViewer    `json:"user"`
	Articles []domain.Article `json:"articles"`
}

// List returns all articles.
//
// @Summary      List articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	articles, err := h.service.ListArticles(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Articles fetched successfully", articleListData{
		User:     articleViewer{Email: user.Email, Roles: user.Roles},
		Articles: articles,
	})
}

// Create adds a new article authored by the caller.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.service.CreateArticle(c.Request().Context(), user, req.Title, req.Content)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "Article created successfully", article)
}

// Delete removes an article by id.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteArticle(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Article deleted successfully", deleted)
}
