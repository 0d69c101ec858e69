package blogValidator

import (
	"strconv"
	"strings"

	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseBlogID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid blog ID!", nil)
	}
	c.Locals("blogID", id)
	return nil
}

// CreateBlog validates a new blog post
func CreateBlog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			CoverURL string `json:"cover_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 5 {
			errors["title"] = "Title must be at least 5 characters long!"
		}

		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		} else if len(reqData.Content) < 50 {
			errors["content"] = "Content must be at least 50 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlog", reqData)
		return c.Next()
	}
}

// BlogList validates pagination for the blog listing
func BlogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)

		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 50 {
			limit = 10
		}

		reqData.Page = &page
		reqData.Limit = &limit

		c.Locals("validatedBlogList", reqData)
		return c.Next()
	}
}

// ReviewBlog validates an admin moderation decision
func ReviewBlog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseBlogID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Approve bool   `json:"approve"`
			Reason  string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)

		if !reqData.Approve && reqData.Reason == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A reason is required when rejecting!", nil)
		}

		c.Locals("validatedBlogReview", reqData)
		return c.Next()
	}
}

// CreateComment validates a comment on a blog post
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseBlogID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.Content == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Comment content is required!", nil)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}

// GetComments validates the blog ID for comment listing
func GetComments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseBlogID(c); err != nil {
			return err
		}
		return c.Next()
	}
}
