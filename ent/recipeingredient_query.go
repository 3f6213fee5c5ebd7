// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/predicate"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeIngredientQuery is the builder for querying RecipeIngredient entities.
type RecipeIngredientQuery struct {
	config
	ctx            *QueryContext
	order          []recipeingredient.OrderOption
	inters         []Interceptor
	predicates     []predicate.RecipeIngredient
	withRecipe     *RecipeQuery
	withIngredient *IngredientQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecipeIngredientQuery builder.
func (_q *RecipeIngredientQuery) Where(ps ...predicate.RecipeIngredient) *RecipeIngredientQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecipeIngredientQuery) Limit(limit int) *RecipeIngredientQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecipeIngredientQuery) Offset(offset int) *RecipeIngredientQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecipeIngredientQuery) Unique(unique bool) *RecipeIngredientQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecipeIngredientQuery) Order(o ...recipeingredient.OrderOption) *RecipeIngredientQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRecipe chains the current query on the "recipe" edge.
func (_q *RecipeIngredientQuery) QueryRecipe() *RecipeQuery {
	query := (&RecipeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipeingredient.Table, recipeingredient.FieldID, selector),
			sqlgraph.To(recipe.Table, recipe.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recipeingredient.RecipeTable, recipeingredient.RecipeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryIngredient chains the current query on the "ingredient" edge.
func (_q *RecipeIngredientQuery) QueryIngredient() *IngredientQuery {
	query := (&IngredientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipeingredient.Table, recipeingredient.FieldID, selector),
			sqlgraph.To(ingredient.Table, ingredient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recipeingredient.IngredientTable, recipeingredient.IngredientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RecipeIngredient entity from the query.
// Returns a *NotFoundError when no RecipeIngredient was found.
func (_q *RecipeIngredientQuery) First(ctx context.Context) (*RecipeIngredient, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recipeingredient.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecipeIngredientQuery) FirstX(ctx context.Context) *RecipeIngredient {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RecipeIngredient ID from the query.
// Returns a *NotFoundError when no RecipeIngredient ID was found.
func (_q *RecipeIngredientQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recipeingredient.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecipeIngredientQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RecipeIngredient entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RecipeIngredient entity is found.
// Returns a *NotFoundError when no RecipeIngredient entities are found.
func (_q *RecipeIngredientQuery) Only(ctx context.Context) (*RecipeIngredient, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recipeingredient.Label}
	default:
		return nil, &NotSingularError{recipeingredient.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecipeIngredientQuery) OnlyX(ctx context.Context) *RecipeIngredient {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RecipeIngredient ID in the query.
// Returns a *NotSingularError when more than one RecipeIngredient ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecipeIngredientQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recipeingredient.Label}
	default:
		err = &NotSingularError{recipeingredient.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecipeIngredientQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RecipeIngredients.
func (_q *RecipeIngredientQuery) All(ctx context.Context) ([]*RecipeIngredient, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RecipeIngredient, *RecipeIngredientQuery]()
	return withInterceptors[[]*RecipeIngredient](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecipeIngredientQuery) AllX(ctx context.Context) []*RecipeIngredient {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RecipeIngredient IDs.
func (_q *RecipeIngredientQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recipeingredient.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecipeIngredientQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecipeIngredientQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecipeIngredientQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecipeIngredientQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecipeIngredientQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RecipeIngredientQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecipeIngredientQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecipeIngredientQuery) Clone() *RecipeIngredientQuery {
	if _q == nil {
		return nil
	}
	return &RecipeIngredientQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]recipeingredient.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.RecipeIngredient{}, _q.predicates...),
		withRecipe:     _q.withRecipe.Clone(),
		withIngredient: _q.withIngredient.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRecipe tells the query-builder to eager-load the nodes that are connected to
// the "recipe" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeIngredientQuery) WithRecipe(opts ...func(*RecipeQuery)) *RecipeIngredientQuery {
	query := (&RecipeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecipe = query
	return _q
}

// WithIngredient tells the query-builder to eager-load the nodes that are connected to
// the "ingredient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeIngredientQuery) WithIngredient(opts ...func(*IngredientQuery)) *RecipeIngredientQuery {
	query := (&IngredientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withIngredient = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RecipeID int `json:"recipe_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RecipeIngredient.Query().
//		GroupBy(recipeingredient.FieldRecipeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RecipeIngredientQuery) GroupBy(field string, fields ...string) *RecipeIngredientGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecipeIngredientGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recipeingredient.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RecipeID int `json:"recipe_id,omitempty"`
//	}
//
//	client.RecipeIngredient.Query().
//		Select(recipeingredient.FieldRecipeID).
//		Scan(ctx, &v)
func (_q *RecipeIngredientQuery) Select(fields ...string) *RecipeIngredientSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecipeIngredientSelect{RecipeIngredientQuery: _q}
	sbuild.label = recipeingredient.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecipeIngredientSelect configured with the given aggregations.
func (_q *RecipeIngredientQuery) Aggregate(fns ...AggregateFunc) *RecipeIngredientSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecipeIngredientQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !recipeingredient.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RecipeIngredientQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RecipeIngredient, error) {
	var (
		nodes       = []*RecipeIngredient{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRecipe != nil,
			_q.withIngredient != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RecipeIngredient).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RecipeIngredient{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRecipe; query != nil {
		if err := _q.loadRecipe(ctx, query, nodes, nil,
			func(n *RecipeIngredient, e *Recipe) { n.Edges.Recipe = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withIngredient; query != nil {
		if err := _q.loadIngredient(ctx, query, nodes, nil,
			func(n *RecipeIngredient, e *Ingredient) { n.Edges.Ingredient = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecipeIngredientQuery) loadRecipe(ctx context.Context, query *RecipeQuery, nodes []*RecipeIngredient, init func(*RecipeIngredient), assign func(*RecipeIngredient, *Recipe)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*RecipeIngredient)
	for i := range nodes {
		fk := nodes[i].RecipeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(recipe.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recipe_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecipeIngredientQuery) loadIngredient(ctx context.Context, query *IngredientQuery, nodes []*RecipeIngredient, init func(*RecipeIngredient), assign func(*RecipeIngredient, *Ingredient)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*RecipeIngredient)
	for i := range nodes {
		fk := nodes[i].IngredientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(ingredient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "ingredient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *RecipeIngredientQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecipeIngredientQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recipeingredient.Table, recipeingredient.Columns, sqlgraph.NewFieldSpec(recipeingredient.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipeingredient.FieldID)
		for i := range fields {
			if fields[i] != recipeingredient.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRecipe != nil {
			_spec.Node.AddColumnOnce(recipeingredient.FieldRecipeID)
		}
		if _q.withIngredient != nil {
			_spec.Node.AddColumnOnce(recipeingredient.FieldIngredientID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RecipeIngredientQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recipeingredient.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recipeingredient.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RecipeIngredientGroupBy is the group-by builder for RecipeIngredient entities.
type RecipeIngredientGroupBy struct {
	selector
	build *RecipeIngredientQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecipeIngredientGroupBy) Aggregate(fns ...AggregateFunc) *RecipeIngredientGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecipeIngredientGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecipeIngredientQuery, *RecipeIngredientGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecipeIngredientGroupBy) sqlScan(ctx context.Context, root *RecipeIngredientQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RecipeIngredientSelect is the builder for selecting fields of RecipeIngredient entities.
type RecipeIngredientSelect struct {
	*RecipeIngredientQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecipeIngredientSelect) Aggregate(fns ...AggregateFunc) *RecipeIngredientSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecipeIngredientSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecipeIngredientQuery, *RecipeIngredientSelect](ctx, _s.RecipeIngredientQuery, _s, _s.inters, v)
}

func (_s *RecipeIngredientSelect) sqlScan(ctx context.Context, root *RecipeIngredientQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
