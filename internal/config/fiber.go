package config

import (
	"LogoVision/internal/api/analysis"
	"LogoVision/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// multipartOverhead leaves room for boundaries and part headers around an
// image of exactly analysis.MaxImageSize bytes.
const multipartOverhead = 1024 * 1024

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "LogoVision",
			BodyLimit:         int(analysis.MaxImageSize) + multipartOverhead,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: true,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler:      handlerUtil.FiberErrorHandler(logger, analysis.ErrPayloadTooLarge),
		})

	return app
}
