package handler

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"docboard/internal/onlyoffice"
	"docboard/internal/service"
	"docboard/internal/storage"
)

// createDocumentRequest is the JSON body of POST /documents/create.
// ContentBase64, when present, pre-seeds the new document.
type createDocumentRequest struct {
	Name          string `json:"name"`
	Ext           string `json:"ext"`
	ContentBase64 string `json:"contentBase64"`
}

// editorSessionRequest is the optional JSON body of the onlyoffice-config
// endpoint; a missing body falls back to an anonymous identity.
type editorSessionRequest struct {
	User onlyoffice.User `json:"user"`
}

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// paramID decodes the :id path parameter; fiber hands it over still
// percent-encoded.
func paramID(c *fiber.Ctx) string {
	raw := c.Params("id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

// translateDocumentErr maps service errors to the standardized envelope.
func translateDocumentErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNameRequired):
		return writeError(c, fiber.StatusBadRequest, "NAME_REQUIRED", "name is required")
	case errors.Is(err, service.ErrExtRequired):
		return writeError(c, fiber.StatusBadRequest, "EXT_REQUIRED", "ext is required")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only validate input and translate results; business logic stays
// in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService, taskSvc service.TaskService) {
	// Health endpoint: checks DB connectivity when a DB is wired
	app.Get("/health", func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// List document metadata
	app.Get("/documents", func(c *fiber.Ctx) error {
		docs, err := docSvc.List(c.UserContext())
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.JSON(docs)
	})

	// Serve raw document bytes with inline disposition.
	// Registered before /documents/:id so the literal segment wins.
	app.Get("/documents/file/:id", func(c *fiber.Ctx) error {
		doc, data, err := docSvc.GetContent(c.UserContext(), paramID(c))
		if err != nil {
			return translateDocumentErr(c, err)
		}
		c.Set(fiber.HeaderContentType, storage.DetectContentType(doc.Ext, data))
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", doc.Title()))
		return c.Send(data)
	})

	// Get single document metadata
	app.Get("/documents/:id", func(c *fiber.Ctx) error {
		doc, err := docSvc.Get(c.UserContext(), paramID(c))
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.JSON(doc)
	})

	// Upload document (multipart/form-data, field name: file)
	app.Post("/documents/upload", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Upload(c.UserContext(), f, fh.Filename)
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	})

	// Create an empty or pre-seeded document
	app.Post("/documents/create", func(c *fiber.Ctx) error {
		var req createDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		var content []byte
		if req.ContentBase64 != "" {
			var err error
			content, err = base64.StdEncoding.DecodeString(req.ContentBase64)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CONTENT", "contentBase64 is not valid base64")
			}
		}
		doc, err := docSvc.Create(c.UserContext(), req.Name, req.Ext, content)
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	})

	// Full-content replace (multipart/form-data, field name: file)
	app.Put("/documents/:id", func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := docSvc.Update(c.UserContext(), paramID(c), f)
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.JSON(doc)
	})

	// Delete document
	app.Delete("/documents/:id", func(c *fiber.Ctx) error {
		if err := docSvc.Delete(c.UserContext(), paramID(c)); err != nil {
			return translateDocumentErr(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Build an editor session configuration
	app.Post("/documents/onlyoffice-config/:id", func(c *fiber.Ctx) error {
		var req editorSessionRequest
		// Body is optional; fall back to an anonymous identity.
		_ = c.BodyParser(&req)
		if req.User.ID == "" {
			req.User = onlyoffice.User{ID: "anonymous", Name: "Anonymous"}
		}
		cfg, err := docSvc.EditorConfig(c.UserContext(), paramID(c), req.User)
		if err != nil {
			return translateDocumentErr(c, err)
		}
		return c.JSON(cfg)
	})

	// Editor save callback. The editor server ignores the HTTP status of
	// this endpoint, so failures are reported in the body only.
	app.Post("/documents/callback/:id", func(c *fiber.Ctx) error {
		var req onlyoffice.CallbackRequest
		if err := c.BodyParser(&req); err != nil {
			return c.JSON(fiber.Map{"error": 1, "message": "invalid callback body"})
		}
		if err := docSvc.Callback(c.UserContext(), paramID(c), req); err != nil {
			return c.JSON(fiber.Map{"error": 1, "message": err.Error()})
		}
		return c.JSON(onlyoffice.CallbackResponse{Error: 0})
	})

	registerTaskRoutes(app, taskSvc)
}

func registerTaskRoutes(app *fiber.App, taskSvc service.TaskService) {
	// List tasks with limit & offset
	app.Get("/tasks", func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := taskSvc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	app.Post("/tasks", func(c *fiber.Ctx) error {
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		task, err := taskSvc.Create(c.UserContext(), req.Title, req.Description, req.Status)
		if err != nil {
			return translateTaskErr(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(task)
	})

	app.Get("/tasks/:id", func(c *fiber.Ctx) error {
		task, err := taskSvc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return translateTaskErr(c, err)
		}
		return c.JSON(task)
	})

	app.Put("/tasks/:id", func(c *fiber.Ctx) error {
		var req taskRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		task, err := taskSvc.Update(c.UserContext(), c.Params("id"), req.Title, req.Description, req.Status)
		if err != nil {
			return translateTaskErr(c, err)
		}
		return c.JSON(task)
	})

	app.Delete("/tasks/:id", func(c *fiber.Ctx) error {
		if err := taskSvc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return translateTaskErr(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func translateTaskErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "task not found")
	case errors.Is(err, service.ErrTitleRequired):
		return writeError(c, fiber.StatusBadRequest, "TITLE_REQUIRED", "title is required")
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "invalid task status")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
