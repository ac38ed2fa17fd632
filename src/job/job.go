package job

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/seventv/LogoAnimator/src/global"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	SourcePath      = "public/icon-192.png"
	DestinationPath = "public/logo-animation.gif"
)

type Job struct {
	ID string `json:"id"`

	Source      string `json:"source"`
	Destination string `json:"destination"`

	ResultConsumer        ResultConsumer      `json:"result_consumer"`
	ResultConsumerDetails jsoniter.RawMessage `json:"result_consumer_details"`
}

// New builds the one job this tool runs: the fixed icon paths resolved against the working
// directory, uploaded to s3 as well when a bucket is configured.
func New(ctx global.Context) (Job, error) {
	j := Job{
		ID:             uuid.NewString(),
		Source:         ctx.Path(SourcePath),
		Destination:    ctx.Path(DestinationPath),
		ResultConsumer: LocalConsumer,
	}

	cfg := ctx.Config().Aws
	if cfg.Region != "" && cfg.Bucket != "" {
		details, err := json.Marshal(ResultConsumerDetailsAws{
			Bucket:    cfg.Bucket,
			KeyFolder: cfg.KeyFolder,
		})
		if err != nil {
			return Job{}, err
		}

		j.ResultConsumer = AwsConsumer
		j.ResultConsumerDetails = details
	}

	return j, nil
}

type File struct {
	Name        string        `json:"name"`
	Path        string        `json:"path"`
	Size        int           `json:"size"`
	ContentType string        `json:"content_type"`
	Animated    bool          `json:"animated"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	FrameCount  int           `json:"frame_count"`
	TimeTaken   time.Duration `json:"time_taken"`
}

type ResultConsumerDetailsAws struct {
	Bucket    string `json:"bucket"`
	KeyFolder string `json:"key_folder"`
}

type ResultConsumer string

const (
	AwsConsumer   ResultConsumer = "aws"
	LocalConsumer ResultConsumer = "local"
)
