package global

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/seventv/LogoAnimator/src/configure"
)

type Context interface {
	context.Context
	Instances() *Instances
	Config() *configure.Config
	// Path resolves a path relative to the configured working directory.
	Path(rel string) string
	AddTask(n int)
	DoneTask()
	Wait()
}

type GlobalContext struct {
	context.Context
	Insts *Instances
	Cfg   *configure.Config
	wg    *sync.WaitGroup
}

func New(ctx context.Context, config *configure.Config) Context {
	return &GlobalContext{
		Context: ctx,
		Insts:   &Instances{},
		Cfg:     config,
		wg:      &sync.WaitGroup{},
	}
}

func (g *GlobalContext) Instances() *Instances {
	return g.Insts
}

func (g *GlobalContext) Config() *configure.Config {
	return g.Cfg
}

func (g *GlobalContext) Path(rel string) string {
	if filepath.IsAbs(rel) || g.Cfg.WorkingDir == "" {
		return rel
	}

	return filepath.Join(g.Cfg.WorkingDir, rel)
}

func (g *GlobalContext) AddTask(n int) {
	g.wg.Add(n)
}

func (g *GlobalContext) DoneTask() {
	g.wg.Done()
}

func (g *GlobalContext) Wait() {
	g.wg.Wait()
}
