package blogController

import (
	"fmt"
	"log"
	"time"

	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog creates a blog post in PENDING state awaiting moderation
func CreateBlog(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedBlog").(*struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		CoverURL string `json:"cover_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	blog := models.Blog{
		UserID:   userID,
		Title:    reqData.Title,
		Content:  reqData.Content,
		CoverURL: reqData.CoverURL,
		Status:   models.BlogStatusPending,
	}

	if err := database.Database.Db.Create(&blog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog!", nil)
	}

	xp := gamification.XPRewards[models.ActivityBlogCreated]
	if err := gamification.AwardXP(database.Database.Db, userID, models.ActivityBlogCreated, xp, "Created blog: "+blog.Title, nil); err != nil {
		log.Printf("Failed to award blog creation XP for user %d: %v", userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog submitted for review!", blog)
}

// GetPublishedBlogs lists published blogs with pagination
func GetPublishedBlogs(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedBlogList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Blog{}).Where("status = ? AND is_deleted = ?", models.BlogStatusPublished, false)

	var total int64
	db.Count(&total)

	var blogs []models.Blog
	if err := db.Preload("User").Offset(offset).Limit(limit).Order("published_at desc").Find(&blogs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blogs!", nil)
	}
	for i := range blogs {
		blogs[i].User.Password = ""
	}

	response := map[string]interface{}{
		"blogs": blogs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blogs fetched successfully!", response)
}

// GetMyBlogs lists the caller's blogs in any state
func GetMyBlogs(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var blogs []models.Blog
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&blogs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blogs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blogs fetched successfully!", blogs)
}

// AdminReviewBlog approves or rejects a pending blog. Approval publishes the
// post and grants the author the publish XP plus the blogsCreated counter.
func AdminReviewBlog(c *fiber.Ctx) error {
	blogID := c.Locals("blogID").(int)

	reqData, ok := c.Locals("validatedBlogReview").(*struct {
		Approve bool   `json:"approve"`
		Reason  string `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var blog models.Blog
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", blogID, false).First(&blog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog not found!", nil)
	}

	if blog.Status == models.BlogStatusPublished {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Blog is already published!", nil)
	}

	if reqData.Approve {
		now := time.Now()
		blog.Status = models.BlogStatusPublished
		blog.PublishedAt = &now
		blog.RejectionReason = ""
	} else {
		blog.Status = models.BlogStatusRejected
		blog.RejectionReason = reqData.Reason
	}

	if err := database.Database.Db.Save(&blog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review blog!", nil)
	}

	if reqData.Approve {
		xp := gamification.XPRewards[models.ActivityBlogPublished]
		desc := fmt.Sprintf("Blog published: %s", blog.Title)
		delta := &gamification.CounterDelta{BlogsCreated: 1}
		if err := gamification.AwardXP(database.Database.Db, blog.UserID, models.ActivityBlogPublished, xp, desc, delta); err != nil {
			log.Printf("Failed to award blog publish XP for user %d: %v", blog.UserID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog reviewed successfully!", blog)
}

// CreateComment adds a comment to a published blog
func CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	blogID := c.Locals("blogID").(int)

	var blog models.Blog
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?", blogID, models.BlogStatusPublished, false).First(&blog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog not found!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		Content string `json:"content"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment := models.BlogComment{
		BlogID:  uint(blogID),
		UserID:  userID,
		Content: reqData.Content,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	xp := gamification.XPRewards[models.ActivityCommentPosted]
	desc := fmt.Sprintf("Commented on: %s", blog.Title)
	if err := gamification.AwardXP(database.Database.Db, userID, models.ActivityCommentPosted, xp, desc, nil); err != nil {
		log.Printf("Failed to award comment XP for user %d: %v", userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created successfully!", comment)
}

// GetComments lists comments on a published blog
func GetComments(c *fiber.Ctx) error {
	blogID := c.Locals("blogID").(int)

	var blog models.Blog
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = ?", blogID, models.BlogStatusPublished, false).First(&blog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog not found!", nil)
	}

	var comments []models.BlogComment
	if err := database.Database.Db.Where("blog_id = ? AND is_deleted = ?", blogID, false).Preload("User").Order("created_at asc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}
	for i := range comments {
		comments[i].User.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", comments)
}
