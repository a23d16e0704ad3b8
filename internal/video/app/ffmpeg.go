package app

import (
	"encoding/json"
	"math"
	"strconv"

	"lifetube/pkg/logger"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Thumbnail synthesis parameters: one frame, 2 seconds in, 640x360
const (
	thumbnailOffset = "00:00:02"
	thumbnailSize   = "640x360"
)

// seams for the usecase tests, the real ffmpeg binary is not exercised there
var (
	probeVideo = func(path string) (string, error) {
		return ffmpeg.Probe(path)
	}

	extractFrame = func(videoPath, outputPath string) error {
		err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": thumbnailOffset}).
			Output(outputPath, ffmpeg.KwArgs{
				"vframes": "1",
				"s":       thumbnailSize,
			}).
			OverWriteOutput().
			Run()
		if err != nil {
			return errors.WithMessage(err, "failed to extract thumbnail frame")
		}
		return nil
	}
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration read the media duration in whole seconds. Duration is
// best-effort metadata: every failure collapses to 0 and the upload
// continues.
func ProbeDuration(path string) int {
	out, err := probeVideo(path)
	if err != nil {
		logger.Log.Errorf("ffprobe failed, duration defaults to 0 :", err)
		return 0
	}

	var p probeFormat
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		logger.Log.Errorf("ffprobe output parse failed, duration defaults to 0 :", err)
		return 0
	}

	seconds, err := strconv.ParseFloat(p.Format.Duration, 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return int(math.Floor(seconds))
}
