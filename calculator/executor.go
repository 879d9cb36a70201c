package calculator

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"reactorloop/model"
)

// 每个分析阶段作为一个任务，互不依赖，可以并发执行
type task struct {
	stage string
	run   func() error
}

type executor struct {
	tasks []task
}

func newExecutor() *executor {
	return &executor{}
}

func (e *executor) add(stage string, run func() error) {
	e.tasks = append(e.tasks, task{stage: stage, run: run})
}

// dispatch 并发执行所有任务，返回每个任务各自的错误，一个任务失败不影响其他任务
func (e *executor) dispatch() (map[string]error, time.Duration) {
	start := time.Now()
	errs := make([]error, len(e.tasks))
	var g errgroup.Group
	for i, t := range e.tasks {
		i, t := i, t
		g.Go(func() error {
			errs[i] = t.run()
			return errs[i]
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("部分分析阶段失败")
	}
	failed := make(map[string]error)
	for i, err := range errs {
		if err != nil {
			failed[e.tasks[i].stage] = err
		}
	}
	return failed, time.Since(start)
}

// Run 对同一组参数执行三个回路分析阶段，并对测量数据执行摩擦系数分析。
// 失败阶段的结果为 nil，不影响其他阶段。rows 为空时跳过摩擦系数分析。
func (c *Calculator) Run(p model.Parameters, rows []model.MeasurementRow) *model.Report {
	report := &model.Report{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		Parameters: p,
		Errors:     make(map[string]string),
	}

	var (
		core       model.CoreResult
		sg         model.SteamGeneratorResult
		loop       model.PrimaryLoopResult
		friction   model.FrictionResult
		comparison []model.Comparison
	)
	e := newExecutor()
	e.add(model.StageCore, func() (err error) {
		core, err = c.Core(p)
		return
	})
	e.add(model.StageSteamGenerator, func() (err error) {
		sg, err = c.SteamGenerator(p)
		return
	})
	e.add(model.StagePrimaryLoop, func() (err error) {
		loop, err = c.PrimaryLoop(p)
		return
	})
	if rows != nil {
		e.add(model.StageFriction, func() (err error) {
			friction, comparison, err = c.Friction(rows)
			return
		})
	}

	failed, cost := e.dispatch()
	for stage, err := range failed {
		report.Errors[stage] = err.Error()
	}
	if _, ok := failed[model.StageCore]; !ok {
		report.Core = &core
	}
	if _, ok := failed[model.StageSteamGenerator]; !ok {
		report.SteamGenerator = &sg
	}
	if _, ok := failed[model.StagePrimaryLoop]; !ok {
		report.PrimaryLoop = &loop
	}
	if _, ok := failed[model.StageFriction]; !ok {
		report.Friction = friction
		report.Comparison = comparison
	}

	log.WithFields(log.Fields{
		"id":     report.ID,
		"failed": len(failed),
		"cost":   cost,
	}).Info("计算完成")
	return report
}
