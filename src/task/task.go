package task

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/seventv/LogoAnimator/src/animation"
	"github.com/seventv/LogoAnimator/src/aws"
	"github.com/seventv/LogoAnimator/src/containers"
	"github.com/seventv/LogoAnimator/src/containers/gif"
	"github.com/seventv/LogoAnimator/src/global"
	"github.com/seventv/LogoAnimator/src/image"
	"github.com/seventv/LogoAnimator/src/job"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrSourceNotFound        = fmt.Errorf("source not found")
	ErrUnknownResultConsumer = fmt.Errorf("unknown result consumer")
	ErrNoS3                  = fmt.Errorf("s3 is not configured")
)

type Task struct {
	job job.Job

	mtx       sync.Mutex
	started   bool
	stopped   bool
	completed bool
	failed    error
	files     []job.File

	events    chan TaskEvent
	closeOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

func New(ctx context.Context, job job.Job) *Task {
	ctx, cancel := context.WithCancel(ctx)
	return &Task{
		ctx:    ctx,
		cancel: cancel,
		job:    job,
		events: make(chan TaskEvent, 20),
	}
}

func (t *Task) Start(ctx global.Context) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.stopped && !t.started {
		// start never runs, so nothing else will end the event stream.
		t.closeEvents()
		return
	}
	if t.started || t.completed {
		return
	}

	t.started = true

	go t.start(ctx)
}

func (t *Task) start(ctx global.Context) {
	defer t.closeEvents()

	t.emit(Started)

	err := t.run(ctx)

	t.mtx.Lock()
	t.completed = true
	t.failed = err
	t.mtx.Unlock()

	t.cancel()
	if err != nil {
		t.emit(Failed)
	} else {
		t.emit(Completed)
	}
}

func (t *Task) run(ctx global.Context) error {
	start := time.Now()

	// nothing may be written when the source is missing, so check before anything else.
	if _, err := os.Stat(t.job.Source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, t.job.Source)
		}
		return err
	}

	data, err := os.ReadFile(t.job.Source)
	if err != nil {
		return err
	}

	t.emit(Loaded)

	if err := t.ctx.Err(); err != nil {
		return err
	}

	t.emit(StageOne)

	src, err := containers.Decode(data)
	if err != nil {
		return err
	}

	t.emit(StageOneComplete)
	t.emit(StageTwo)

	anim, err := animation.Synthesize(t.ctx, src)
	if err != nil {
		return err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		layouts := make([]image.Layout, len(anim.Frames))
		for i, f := range anim.Frames {
			layouts[i] = f.Layout
		}
		logrus.Debug("frame layouts: ", spew.Sdump(layouts))
	}

	t.emit(StageTwoComplete)
	t.emit(StageThree)

	// encode fully in memory so a failed encode never leaves a partial file behind.
	buf := &bytes.Buffer{}
	if err := gif.Encode(t.ctx, buf, anim); err != nil {
		return err
	}

	t.emit(StageThreeComplete)

	if err := t.store(ctx, buf.Bytes()); err != nil {
		return err
	}

	t.emit(Stored)

	t.mtx.Lock()
	t.files = append(t.files, job.File{
		Name:        filepath.Base(t.job.Destination),
		Path:        t.job.Destination,
		Size:        buf.Len(),
		ContentType: image.GIF.ContentType(),
		Animated:    true,
		Width:       anim.Width,
		Height:      anim.Height,
		FrameCount:  len(anim.Frames),
		TimeTaken:   time.Since(start),
	})
	t.mtx.Unlock()

	return nil
}

// store writes the destination file and then hands it to the configured result consumer.
// Nothing is uploaded when the local write fails. Consumer errors are collected rather than
// stopping at the first one.
func (t *Task) store(ctx global.Context, data []byte) error {
	if err := writeFile(t.job.Destination, data); err != nil {
		return err
	}

	var err error
	switch t.job.ResultConsumer {
	case job.LocalConsumer, "":
	case job.AwsConsumer:
		details := job.ResultConsumerDetailsAws{}
		if e := json.Unmarshal(t.job.ResultConsumerDetails, &details); e != nil {
			return e
		}

		if ctx.Instances().AwsS3 == nil {
			return ErrNoS3
		}

		contentType := image.GIF.ContentType()
		err = multierror.Append(err, ctx.Instances().AwsS3.UploadFile(
			t.ctx,
			details.Bucket,
			path.Join(details.KeyFolder, filepath.Base(t.job.Destination)),
			bytes.NewReader(data),
			&contentType,
			aws.AclPublicRead,
			aws.DefaultCacheControl,
		)).ErrorOrNil()
	default:
		err = multierror.Append(err, ErrUnknownResultConsumer).ErrorOrNil()
	}

	return err
}

// writeFile replaces dst in one rename so readers never see a truncated file.
func writeFile(dst string, data []byte) (err error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierror.Append(err, os.Remove(f.Name())).ErrorOrNil()
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(f.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(f.Name(), dst)
}

func (t *Task) emit(typ TaskEventType) {
	t.events <- TaskEvent{
		JobID:     t.job.ID,
		Type:      typ,
		Timestamp: time.Now(),
	}
}

func (t *Task) closeEvents() {
	t.closeOnce.Do(func() {
		close(t.events)
	})
}

func (t *Task) Stop() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.stopped = true
	t.cancel()
}

func (t *Task) Done() <-chan struct{} {
	return t.ctx.Done()
}

func (t *Task) Events() <-chan TaskEvent {
	return t.events
}

func (t *Task) Completed() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.completed
}

func (t *Task) Failed() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.failed
}

func (t *Task) Files() []job.File {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.files
}

func (t *Task) Job() job.Job {
	return t.job
}
