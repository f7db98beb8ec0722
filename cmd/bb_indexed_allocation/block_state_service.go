package main

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/buildbarn/bb-indexed-allocation/pkg/allocator"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/gorilla/mux"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	templateFuncMap = template.FuncMap{
		"abbreviate": func(s string) string {
			return abbreviate(s, 11)
		},
		"file_name": fileNameFromIndexLabel,
	}

	getBlockStateTemplate = template.Must(template.New("GetBlockState").Funcs(templateFuncMap).Parse(`
<!DOCTYPE html>
<html>
  <head>
    <title>Indexed File Allocation</title>
    <style>
      html { font-family: sans-serif; }
      .grid { display: grid; gap: 3px; grid-template-columns: repeat({{.Columns}}, 6em); }
      .block { padding: 1em 0; text-align: center; overflow: hidden; white-space: nowrap; }
      .free { background-color: white; border: 1px solid #ccc; }
      .index { background-color: blue; color: white; }
      .data { background-color: green; color: white; }
      .index a { color: white; }
    </style>
  </head>
  <body>
    <h1>Indexed File Allocation</h1>
    <p>{{.FreeBlocks}} of {{len .Blocks}} blocks free, {{len .Files}} files.</p>
    <div class="grid">
      {{range .Blocks}}
        {{if eq .Kind.String "free"}}
          <div class="block free">{{.ID}}</div>
        {{else if eq .Kind.String "index"}}
          <div class="block index" title="{{.Label}}"><a href="file?name={{file_name .Label}}">{{abbreviate .Label}}</a></div>
        {{else}}
          <div class="block data" title="{{.Label}}">{{abbreviate .Label}}</div>
        {{end}}
      {{end}}
    </div>
    <h2>Add file</h2>
    <form action="allocate" method="post">
      <label>Name <input type="text" name="name"></label>
      <label>Data blocks <input type="number" name="size" min="1" value="1"></label>
      <input type="submit" value="Add File">
    </form>
  </body>
</html>
`))

	getFileTemplate = template.Must(template.New("GetFile").Funcs(templateFuncMap).Parse(`
<!DOCTYPE html>
<html>
  <head>
    <title>{{.Name}}</title>
    <style>
      html { font-family: sans-serif; }
    </style>
  </head>
  <body>
    <h1>{{.Name}}</h1>
    <table>
      <tr><th>File Name</th><td>{{.Name}}</td></tr>
      <tr><th>Index Block</th><td>{{.Record.IndexBlock}}</td></tr>
      <tr><th>Data Blocks</th><td>{{range $i, $block := .Record.DataBlocks}}{{if $i}}, {{end}}{{$block}}{{end}}</td></tr>
    </table>
    <p><a href=".">Back</a></p>
  </body>
</html>
`))
)

// httpStatusFromCode converts the code of an admission error to the
// HTTP status code returned to the browser.
func httpStatusFromCode(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.ResourceExhausted:
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

type blockStateService struct {
	allocator allocator.Allocator
	columns   int
}

func newBlockStateService(allocator allocator.Allocator, columns int, router *mux.Router) *blockStateService {
	s := &blockStateService{
		allocator: allocator,
		columns:   columns,
	}
	router.HandleFunc("/", s.handleGetBlockState).Methods(http.MethodGet)
	router.HandleFunc("/allocate", s.handleAllocate).Methods(http.MethodPost)
	router.HandleFunc("/file", s.handleGetFile).Methods(http.MethodGet)
	return s
}

func (s *blockStateService) handleGetBlockState(w http.ResponseWriter, req *http.Request) {
	blocks := s.allocator.GetBlockStates()
	freeBlocks := 0
	for _, block := range blocks {
		if block.Kind == allocator.BlockKindFree {
			freeBlocks++
		}
	}
	if err := getBlockStateTemplate.Execute(w, struct {
		Columns    int
		FreeBlocks int
		Blocks     []allocator.BlockState
		Files      []string
	}{
		Columns:    s.columns,
		FreeBlocks: freeBlocks,
		Blocks:     blocks,
		Files:      s.allocator.ListFiles(),
	}); err != nil {
		log.Print(err)
	}
}

func (s *blockStateService) handleAllocate(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(w, util.StatusWrapWithCode(err, codes.InvalidArgument, "Failed to parse form").Error(), http.StatusBadRequest)
		return
	}
	size, err := strconv.ParseInt(req.FormValue("size"), 10, 32)
	if err != nil {
		http.Error(w, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid file size").Error(), http.StatusBadRequest)
		return
	}
	if _, err := s.allocator.Allocate(req.FormValue("name"), int32(size)); err != nil {
		http.Error(w, util.StatusWrap(err, "Failed to allocate file").Error(), httpStatusFromCode(status.Code(err)))
		return
	}
	http.Redirect(w, req, ".", http.StatusSeeOther)
}

func (s *blockStateService) handleGetFile(w http.ResponseWriter, req *http.Request) {
	name := req.URL.Query().Get("name")
	record, ok := s.allocator.Lookup(name)
	if !ok {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	if err := getFileTemplate.Execute(w, struct {
		Name   string
		Record allocator.FileRecord
	}{
		Name:   name,
		Record: record,
	}); err != nil {
		log.Print(err)
	}
}
