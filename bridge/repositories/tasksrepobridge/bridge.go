package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
	exporter       *Exporter
}

func newBridge(log *logger.Logger, taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		log:            log,
		taskRepository: taskRepository,
		exporter:       NewExporter(taskRepository),
	}
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(parseQueryParams(r))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	tasks := b.taskRepository.Query(ctx, filter)
	return fopbridge.NewNonPaginatedRecords(MarshalListToBridge(tasks))
}

func (b *bridge) httpStats(ctx context.Context, r *http.Request) web.Encoder {
	return web.NewJSONResponse(MarshalStats(b.taskRepository.Counts(ctx)))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	task, err := b.taskRepository.Get(ctx, id)
	if err != nil {
		return toAppError(err)
	}
	return fopbridge.NewRecordResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return decodeError(err)
	}

	task, err := b.taskRepository.Add(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return toAppError(err)
	}
	return fopbridge.NewCreatedResponse(MarshalToBridge(task))
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return decodeError(err)
	}

	update, err := MarshalUpdateToRepository(input)
	if err != nil {
		return toAppError(err)
	}
	if err := b.taskRepository.Update(ctx, id, update); err != nil {
		return toAppError(err)
	}
	return web.NewStatusResponse(http.StatusNoContent)
}

func (b *bridge) httpUpdateStatus(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	var input UpdateStatusInput
	if err := web.Decode(r, &input); err != nil {
		return decodeError(err)
	}

	status, err := tasksrepo.ParseStatus(input.Status)
	if err != nil {
		return toAppError(err)
	}
	if err := b.taskRepository.UpdateStatus(ctx, id, status); err != nil {
		return toAppError(err)
	}
	return web.NewStatusResponse(http.StatusNoContent)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := parseTaskID(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	if err := b.taskRepository.Delete(ctx, id); err != nil {
		return toAppError(err)
	}
	return web.NewStatusResponse(http.StatusNoContent)
}

func (b *bridge) httpExport(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(parseQueryParams(r))
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	format := web.QueryParam(r, "format")
	if format == "" {
		format = "json"
	}

	exp, err := b.exporter.Export(ctx, filter, format)
	switch {
	case errors.Is(err, ErrUnknownFormat):
		return errs.New(errs.InvalidArgument, err)
	case err != nil:
		return errs.New(errs.Internal, err)
	}

	b.log.InfoContext(ctx, "tasks exported", "format", format, "bytes", len(exp.Data))
	return fopbridge.NewFileResponse(exp.Data, exp.ContentType, exp.Filename)
}

// toAppError maps repository errors onto API error codes.
func toAppError(err error) *errs.Error {
	var verr *tasksrepo.ValidationError
	switch {
	case errors.As(err, &verr):
		return errs.New(errs.InvalidArgument, err).WithFields(verr.Fields.Fields())
	case errors.Is(err, tasksrepo.ErrInvalidStatus):
		return errs.New(errs.InvalidArgument, err)
	case errors.Is(err, tasksrepo.ErrNotFound):
		return errs.Newf(errs.NotFound, "task not found")
	}

	return errs.New(errs.Internal, err)
}

// decodeError reports a malformed body as a bad request.
func decodeError(err error) *errs.Error {
	var verr *tasksrepo.ValidationError
	if errors.As(err, &verr) || errors.Is(err, tasksrepo.ErrInvalidStatus) {
		return toAppError(err)
	}
	return errs.New(errs.InvalidArgument, err)
}
