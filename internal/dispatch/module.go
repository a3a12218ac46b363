package dispatch

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes the order retrieval dispatcher to the fx graph.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Retriever Retriever
	Logger    *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return New(p.Retriever, p.Logger)
}
