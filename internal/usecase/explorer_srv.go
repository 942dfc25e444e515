package usecase

import (
	"context"
	"strings"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/i18n"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type ExplorerService interface {
	// Explore lists all tables and, for each selected table that is in that
	// list, up to the requested number of rows. A nil request only lists.
	Explore(ctx context.Context, req *request.ExploreRequest) (*response.ExplorerPage, error)
}

type explorerService struct {
	explorer repository.ExplorerRepository
	log      *zap.Logger
}

func NewExplorerService(explorer repository.ExplorerRepository, log *zap.Logger) ExplorerService {
	return &explorerService{
		explorer: explorer,
		log:      log.With(zap.String("service", "explorer")),
	}
}

func (s *explorerService) Explore(ctx context.Context, req *request.ExploreRequest) (*response.ExplorerPage, error) {
	tables, err := s.explorer.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	page := &response.ExplorerPage{
		AllTables:      tables,
		SelectedTables: []string{},
		Limit:          utils.DefaultRowLimit,
		Results:        []response.TableResult{},
	}
	if req == nil {
		return page, nil
	}

	page.Limit = utils.ParseRowLimit(string(req.Limit))

	allowed := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		allowed[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(req.Tables))
	for _, table := range req.Tables {
		if _, dup := seen[table]; dup {
			continue
		}
		seen[table] = struct{}{}
		page.SelectedTables = append(page.SelectedTables, table)

		if _, ok := allowed[table]; !ok {
			s.log.Warn("Rejected table outside allow-list", zap.String("table", table))
			page.Rejected = append(page.Rejected, table)
			continue
		}

		data, err := s.explorer.FetchRows(ctx, table, page.Limit)
		if err != nil {
			return nil, err
		}
		page.Results = append(page.Results, response.TableResult{
			Name:    table,
			Columns: data.Columns,
			Rows:    data.Rows,
		})
	}

	if len(page.Rejected) > 0 {
		page.Status = response.NewStatus(i18n.TableRejected, strings.Join(page.Rejected, ", "))
	}
	return page, nil
}
