package http

import (
	"context"
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewOpenAPIValidationMiddleware loads the OpenAPI contract from specPath and
// returns echo middleware that rejects requests not matching it with 400.
// Requests for paths outside the contract (health, swagger UI) pass through.
func NewOpenAPIValidationMiddleware(specPath string) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(specPath)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if isOutsideContract(findErr) {
					return next(ctx)
				}
				return badRequest(ctx, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validateErr := openapi3filter.ValidateRequest(context.Background(), input); validateErr != nil {
				return badRequest(ctx, requestErrorMessage(validateErr))
			}

			return next(ctx)
		}
	}, nil
}

func isOutsideContract(err error) bool {
	return errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed)
}

// requestErrorMessage collapses multi-line schema errors to their first line
// so the response body stays a single sentence.
func requestErrorMessage(err error) string {
	message := err.Error()
	if idx := strings.IndexByte(message, '\n'); idx > 0 {
		message = message[:idx]
	}
	return message
}
