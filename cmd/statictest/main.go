// Command statictest is the vet tool run over this module:
//
//	go vet -vettool=$(pwd)/bin/statictest ./...
package main

//go:generate go build -o=../../bin/statictest

import (
	"github.com/jingyugao/rowserrcheck/passes/rowserr"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"golang.org/x/tools/go/analysis/passes/unusedwrite"
	"golang.org/x/tools/go/analysis/unitchecker"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/Yandex-Practicum/go-ftracker/internal/analysis/kindswitch"
)

// disabledChecks are staticcheck suite checks that are not run.
var disabledChecks = map[string]string{
	"ST1000": "package comment is optional for commands",
	"ST1020": "doc of exported functions may start with a verb",
	"ST1021": "doc of exported types may start with an article",
	"ST1022": "grouped constants are documented by the group",
	"SA6002": "no sync.Pool in this module",
}

// vetAnalyzers are the go vet passes relevant to plain Go code:
// formatting, errors, contexts, tests and control flow.
var vetAnalyzers = []*analysis.Analyzer{
	assign.Analyzer,
	bools.Analyzer,
	buildtag.Analyzer,
	composite.Analyzer,
	copylock.Analyzer,
	deepequalerrors.Analyzer,
	errorsas.Analyzer,
	ifaceassert.Analyzer,
	lostcancel.Analyzer,
	nilfunc.Analyzer,
	nilness.Analyzer,
	printf.Analyzer,
	shift.Analyzer,
	stdmethods.Analyzer,
	stringintconv.Analyzer,
	tests.Analyzer,
	unreachable.Analyzer,
	unusedresult.Analyzer,
	unusedwrite.Analyzer,
}

// resourceAnalyzers make sure HTTP response bodies and sql.Rows are
// closed and checked. They report nothing for packages that import neither
// net/http nor database/sql.
var resourceAnalyzers = []*analysis.Analyzer{
	httpresponse.Analyzer,
	bodyclose.Analyzer,
	rowserr.NewAnalyzer(),
}

func main() {
	unitchecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	var list []*analysis.Analyzer
	list = append(list, vetAnalyzers...)
	list = append(list, resourceAnalyzers...)
	list = append(list, kindswitch.Analyzer)

	add := func(a *analysis.Analyzer) {
		if _, off := disabledChecks[a.Name]; !off {
			list = append(list, a)
		}
	}
	for _, v := range simple.Analyzers {
		add(v.Analyzer)
	}
	for _, v := range staticcheck.Analyzers {
		add(v.Analyzer)
	}
	for _, v := range stylecheck.Analyzers {
		add(v.Analyzer)
	}
	return list
}
