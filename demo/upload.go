// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demo

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

// MaxFileSize is the largest accepted upload, 100 MiB.
const MaxFileSize = 100 << 20

// UntitledVideo is the title used when the file name has no stem.
const UntitledVideo = "Untitled Video"

// Upload check errors.
var (
	// ErrNotVideo is returned for files whose content type is not video/*.
	ErrNotVideo = errors.New("demo: please select a valid video file")

	// ErrTooLarge is returned for files over MaxFileSize.
	ErrTooLarge = errors.New("demo: file size exceeds 100 MB limit")
)

// CheckFile validates a selected file before it is previewed or uploaded.
func CheckFile(name, contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "video/") {
		return fmt.Errorf("%w: %s (%q)", ErrNotVideo, name, contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, name, size)
	}
	return nil
}

// TitleFromFilename proposes a title from a file name: the base name
// without its last extension. Names without a dot have no stem and
// yield UntitledVideo.
func TitleFromFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return UntitledVideo
	}
	return Normalize(base[:i])
}

// ParseTags splits a comma separated tag list. Tags are trimmed and empty
// entries dropped.
func ParseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(Normalize(tag)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// UploadForm is the metadata half of an upload. The file itself travels
// as the video_file part.
type UploadForm struct {
	Title       string
	Description string
	Category    string
	Tags        string
}

// Fields returns the multipart form fields for f, excluding video_file.
// Text fields are trimmed and the tags are sent as a JSON array.
func (f UploadForm) Fields() (map[string]string, error) {
	tags := ParseTags(f.Tags)
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("demo: encode tags: %w", err)
	}
	return map[string]string{
		"title":       strings.TrimSpace(Normalize(f.Title)),
		"description": strings.TrimSpace(Normalize(f.Description)),
		"category":    strings.TrimSpace(Normalize(f.Category)),
		"tags":        string(encoded),
	}, nil
}
