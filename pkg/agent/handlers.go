package agent

import "github.com/glocalhq/glocal/pkg/pipeline"

var handlers = map[pipeline.Stage]Handler{
	pipeline.StageASR:         ASRHandler{},
	pipeline.StageTranslate:   TranslateHandler{},
	pipeline.StageTTS:         TTSHandler{},
	pipeline.StageMix:         MixHandler{},
	pipeline.StageSubs:        SubsHandler{},
	pipeline.StageTextInFrame: TextInFrameHandler{},
	pipeline.StageQC:          QCHandler{},
}

// HandlerFor returns the handler implementing a pipeline stage.
func HandlerFor(stage pipeline.Stage) (Handler, bool) {
	h, ok := handlers[stage]
	return h, ok
}
