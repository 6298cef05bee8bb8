package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/infra/reportstore"
	"github.com/aalvaropc/probtable/internal/infra/workspacefinder"
	"github.com/aalvaropc/probtable/internal/infra/yamltable"
	"github.com/aalvaropc/probtable/internal/ports"
)

type workspaceCtx struct {
	root string // empty outside a workspace
	cfg  domain.Config

	tables  *yamltable.Loader
	catalog ports.TableCatalog
	store   ports.ReportStore
}

// locator is swapped in tests.
var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

var errNoWorkspace = errors.New("no workspace (tip: run `probtable init` or pass --workspace)")

// loadWorkspace resolves the workspace and its config. Outside a workspace it
// falls back to default config, resolving table names against the working dir.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if strings.TrimSpace(workspaceFlag) != "" || !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}

		cfg := domain.DefaultConfig()
		loader := yamltable.NewLoader(".", yamltable.WithTablesDir(cfg.Paths.TablesDir))
		return &workspaceCtx{cfg: cfg, tables: loader, catalog: loader}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamltable.NewLoader(root, yamltable.WithTablesDir(cfg.Paths.TablesDir))
	store := reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true))

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		tables:  loader,
		catalog: loader,
		store:   store,
	}, nil
}

// storeFor returns the report store when saving was requested.
func (ws *workspaceCtx) storeFor(save bool) (ports.ReportStore, error) {
	if !save {
		return nil, nil
	}
	if ws.store == nil {
		return nil, fmt.Errorf("--save needs a workspace: %w", errNoWorkspace)
	}
	return ws.store, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q: %w", wd, err)
	}
	return root, nil
}
