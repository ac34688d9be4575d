// Package kindswitch defines an Analyzer that reports switch statements over
// an enum-like named type which do not list every constant of that type.
//
// A default clause does not make a switch complete: adding a new workout
// kind must touch every place that dispatches on kinds.
package kindswitch

import (
	"go/ast"
	"go/constant"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `check that switches over workout kinds name every kind

Switch statements whose tag has one of the configured named types must list
every constant of that type declared in the type's package.`

var Analyzer = &analysis.Analyzer{
	Name:     "kindswitch",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var enumTypes string

func init() {
	Analyzer.Flags.StringVar(&enumTypes, "types",
		"github.com/Yandex-Practicum/go-ftracker/internal/ftracker.Kind",
		"comma separated list of package-qualified types to check")
}

func run(pass *analysis.Pass) (interface{}, error) {
	checked := make(map[string]bool)
	for _, name := range strings.Split(enumTypes, ",") {
		if name = strings.TrimSpace(name); name != "" {
			checked[name] = true
		}
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{(*ast.SwitchStmt)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		sw := n.(*ast.SwitchStmt)
		if sw.Tag == nil {
			return
		}

		named, ok := pass.TypesInfo.TypeOf(sw.Tag).(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return
		}
		if !checked[named.Obj().Pkg().Path()+"."+named.Obj().Name()] {
			return
		}

		covered, ok := caseValues(pass, sw)
		if !ok {
			return
		}

		var missing []string
		for _, c := range enumConsts(named) {
			if !covered[c.Val().ExactString()] {
				missing = append(missing, c.Name())
			}
		}
		if len(missing) > 0 {
			pass.Reportf(sw.Pos(), "switch on %s misses %s", named.Obj().Name(), strings.Join(missing, ", "))
		}
	})

	return nil, nil
}

// caseValues collects constant case values of sw. It reports false when a
// case is not a constant expression and completeness cannot be decided.
func caseValues(pass *analysis.Pass, sw *ast.SwitchStmt) (map[string]bool, bool) {
	covered := make(map[string]bool)
	for _, stmt := range sw.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		for _, expr := range clause.List {
			tv, ok := pass.TypesInfo.Types[expr]
			if !ok || tv.Value == nil {
				return nil, false
			}
			covered[tv.Value.ExactString()] = true
		}
	}
	return covered, true
}

// enumConsts returns package-level constants of type named, sorted by name.
func enumConsts(named *types.Named) []*types.Const {
	scope := named.Obj().Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}
		if c.Val().Kind() == constant.Unknown {
			continue
		}
		consts = append(consts, c)
	}

	sort.Slice(consts, func(i, j int) bool { return consts[i].Name() < consts[j].Name() })
	return consts
}
