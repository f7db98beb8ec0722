package main

import (
	"strconv"
	"strings"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fileSpecification is a file to allocate, as passed to the --file
// command line flag in the form "name:size".
type fileSpecification struct {
	name string
	size int32
}

func parseFileSpecification(s string) (fileSpecification, error) {
	// Split at the last colon, so that file names may contain
	// colons themselves.
	separator := strings.LastIndexByte(s, ':')
	if separator < 0 {
		return fileSpecification{}, status.Errorf(codes.InvalidArgument, "File specification %#v is not of the form name:size", s)
	}
	size, err := strconv.ParseInt(s[separator+1:], 10, 32)
	if err != nil {
		return fileSpecification{}, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid size in file specification %#v", s)
	}
	return fileSpecification{
		name: s[:separator],
		size: int32(size),
	}, nil
}
