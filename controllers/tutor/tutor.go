package tutorController

import (
	"log"
	"time"

	"triethoc/config"
	"triethoc/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// tutorRequest is the payload sent to the text-completion service
type tutorRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type tutorResponse struct {
	Completion string `json:"completion"`
}

// AskTutor forwards a philosophy question to the external text-completion
// service and relays the answer. Nothing is persisted; the service is an
// opaque collaborator.
func AskTutor(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTutorQuestion").(*struct {
		Question string `json:"question"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := resty.New().SetTimeout(30 * time.Second)

	var result tutorResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+config.AppConfig.TutorApiKey).
		SetBody(tutorRequest{
			Prompt:      reqData.Question,
			MaxTokens:   1024,
			Temperature: 0.7,
		}).
		SetResult(&result).
		Post(config.AppConfig.TutorApiURL)

	if err != nil {
		log.Printf("Tutor API call failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Tutor service unavailable!", nil)
	}
	if resp.StatusCode() != fiber.StatusOK {
		log.Printf("Tutor API returned status %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Tutor service unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer generated successfully!", fiber.Map{
		"answer": result.Completion,
	})
}
