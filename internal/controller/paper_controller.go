package controller

import (
	"io"

	"paperspace-be/internal/dto"
	"paperspace-be/internal/pkg/serverutils"
	"paperspace-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaperController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	WorkspacePapers(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
}

type paperController struct {
	paperService service.IPaperService
}

func NewPaperController(paperService service.IPaperService) IPaperController {
	return &paperController{
		paperService: paperService,
	}
}

func (c *paperController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/paper/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("search", c.Search)
	h.Post("upload", c.Upload)
	h.Post("import", c.Import)
	h.Get("workspace/:workspace_id", c.WorkspacePapers)
	h.Delete("workspace/:workspace_id/paper/:paper_id", c.Remove)
}

func (c *paperController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchPapersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paperService.SearchPapers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search papers", res))
}

func (c *paperController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	req := dto.UploadPaperRequest{
		Filename: fileHeader.Filename,
		Title:    ctx.FormValue("title"),
		Authors:  ctx.FormValue("authors"),
		Content:  content,
	}

	res, err := c.paperService.UploadPaper(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload paper", res))
}

func (c *paperController) Import(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ImportPaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.paperService.ImportPaper(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Paper imported successfully", nil))
}

func (c *paperController) WorkspacePapers(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	workspaceId, _ := uuid.Parse(ctx.Params("workspace_id"))

	res, err := c.paperService.GetWorkspacePapers(ctx.Context(), userId, workspaceId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list workspace papers", res))
}

func (c *paperController) Remove(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	workspaceId, _ := uuid.Parse(ctx.Params("workspace_id"))
	paperId, _ := uuid.Parse(ctx.Params("paper_id"))

	if err := c.paperService.RemovePaper(ctx.Context(), userId, workspaceId, paperId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove paper from workspace", nil))
}
