package usecase

import (
	"context"
	"strings"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
)

// ParseFreeform turns unstructured text into task candidates via the
// configured strategy chain. Data problems degrade the result (ambiguous
// lines, parsing errors, lower confidence); they never fail the request.
func (uc *implUseCase) ParseFreeform(ctx context.Context, sc model.Scope, input planner.ParseInput) (planner.FreeformParseResult, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return planner.FreeformParseResult{}, planner.ErrEmptyInput
	}

	uc.l.Infof(ctx, "ParseFreeform: user=%s input_length=%d", sc.UserID, len(input.RawText))

	result, err := uc.strategy.Parse(ctx, input.RawText, uc.now())
	if err != nil {
		return planner.FreeformParseResult{}, err
	}

	uc.l.Infof(ctx, "ParseFreeform: extracted=%d ambiguous=%d errors=%d confidence=%s",
		len(result.ExtractedTasks), len(result.AmbiguousLines), len(result.ParsingErrors), result.Confidence)
	return result, nil
}
