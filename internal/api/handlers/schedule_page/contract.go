package schedule_page

import (
	"context"
	"io"

	"github.com/m04kA/SMC-FootSpaReservation/internal/api/view"
	getSchedule "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
)

type GetScheduleUseCase interface {
	Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error)
}

type Renderer interface {
	Render(w io.Writer, data *view.PageData) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
