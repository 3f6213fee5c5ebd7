// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/predicate"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"foodgram-api/ent/user"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecipeQuery is the builder for querying Recipe entities.
type RecipeQuery struct {
	config
	ctx                   *QueryContext
	order                 []recipe.OrderOption
	inters                []Interceptor
	predicates            []predicate.Recipe
	withAuthor            *UserQuery
	withRecipeIngredients *RecipeIngredientQuery
	withFavoritedBy       *FavoriteQuery
	withInCarts           *CartItemQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecipeQuery builder.
func (_q *RecipeQuery) Where(ps ...predicate.Recipe) *RecipeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecipeQuery) Limit(limit int) *RecipeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecipeQuery) Offset(offset int) *RecipeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecipeQuery) Unique(unique bool) *RecipeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecipeQuery) Order(o ...recipe.OrderOption) *RecipeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAuthor chains the current query on the "author" edge.
func (_q *RecipeQuery) QueryAuthor() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipe.Table, recipe.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recipe.AuthorTable, recipe.AuthorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecipeIngredients chains the current query on the "recipe_ingredients" edge.
func (_q *RecipeQuery) QueryRecipeIngredients() *RecipeIngredientQuery {
	query := (&RecipeIngredientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipe.Table, recipe.FieldID, selector),
			sqlgraph.To(recipeingredient.Table, recipeingredient.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recipe.RecipeIngredientsTable, recipe.RecipeIngredientsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFavoritedBy chains the current query on the "favorited_by" edge.
func (_q *RecipeQuery) QueryFavoritedBy() *FavoriteQuery {
	query := (&FavoriteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipe.Table, recipe.FieldID, selector),
			sqlgraph.To(favorite.Table, favorite.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recipe.FavoritedByTable, recipe.FavoritedByColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInCarts chains the current query on the "in_carts" edge.
func (_q *RecipeQuery) QueryInCarts() *CartItemQuery {
	query := (&CartItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recipe.Table, recipe.FieldID, selector),
			sqlgraph.To(cartitem.Table, cartitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recipe.InCartsTable, recipe.InCartsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Recipe entity from the query.
// Returns a *NotFoundError when no Recipe was found.
func (_q *RecipeQuery) First(ctx context.Context) (*Recipe, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recipe.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecipeQuery) FirstX(ctx context.Context) *Recipe {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Recipe ID from the query.
// Returns a *NotFoundError when no Recipe ID was found.
func (_q *RecipeQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recipe.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecipeQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Recipe entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Recipe entity is found.
// Returns a *NotFoundError when no Recipe entities are found.
func (_q *RecipeQuery) Only(ctx context.Context) (*Recipe, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recipe.Label}
	default:
		return nil, &NotSingularError{recipe.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecipeQuery) OnlyX(ctx context.Context) *Recipe {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Recipe ID in the query.
// Returns a *NotSingularError when more than one Recipe ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecipeQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recipe.Label}
	default:
		err = &NotSingularError{recipe.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecipeQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Recipes.
func (_q *RecipeQuery) All(ctx context.Context) ([]*Recipe, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Recipe, *RecipeQuery]()
	return withInterceptors[[]*Recipe](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecipeQuery) AllX(ctx context.Context) []*Recipe {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Recipe IDs.
func (_q *RecipeQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recipe.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecipeQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecipeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecipeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecipeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecipeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecipeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecipeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecipeQuery) Clone() *RecipeQuery {
	if _q == nil {
		return nil
	}
	return &RecipeQuery{
		config:                _q.config,
		ctx:                   _q.ctx.Clone(),
		order:                 append([]recipe.OrderOption{}, _q.order...),
		inters:                append([]Interceptor{}, _q.inters...),
		predicates:            append([]predicate.Recipe{}, _q.predicates...),
		withAuthor:            _q.withAuthor.Clone(),
		withRecipeIngredients: _q.withRecipeIngredients.Clone(),
		withFavoritedBy:       _q.withFavoritedBy.Clone(),
		withInCarts:           _q.withInCarts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAuthor tells the query-builder to eager-load the nodes that are connected to
// the "author" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeQuery) WithAuthor(opts ...func(*UserQuery)) *RecipeQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthor = query
	return _q
}

// WithRecipeIngredients tells the query-builder to eager-load the nodes that are connected to
// the "recipe_ingredients" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeQuery) WithRecipeIngredients(opts ...func(*RecipeIngredientQuery)) *RecipeQuery {
	query := (&RecipeIngredientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecipeIngredients = query
	return _q
}

// WithFavoritedBy tells the query-builder to eager-load the nodes that are connected to
// the "favorited_by" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeQuery) WithFavoritedBy(opts ...func(*FavoriteQuery)) *RecipeQuery {
	query := (&FavoriteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFavoritedBy = query
	return _q
}

// WithInCarts tells the query-builder to eager-load the nodes that are connected to
// the "in_carts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecipeQuery) WithInCarts(opts ...func(*CartItemQuery)) *RecipeQuery {
	query := (&CartItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInCarts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AuthorID int `json:"author_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Recipe.Query().
//		GroupBy(recipe.FieldAuthorID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RecipeQuery) GroupBy(field string, fields ...string) *RecipeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecipeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recipe.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AuthorID int `json:"author_id,omitempty"`
//	}
//
//	client.Recipe.Query().
//		Select(recipe.FieldAuthorID).
//		Scan(ctx, &v)
func (_q *RecipeQuery) Select(fields ...string) *RecipeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecipeSelect{RecipeQuery: _q}
	sbuild.label = recipe.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecipeSelect configured with the given aggregations.
func (_q *RecipeQuery) Aggregate(fns ...AggregateFunc) *RecipeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecipeQuery) prepareQuery(ctx context.Context) error {
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
		if !recipe.ValidColumn(f) {
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

func (_q *RecipeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Recipe, error) {
	var (
		nodes       = []*Recipe{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withAuthor != nil,
			_q.withRecipeIngredients != nil,
			_q.withFavoritedBy != nil,
			_q.withInCarts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Recipe).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Recipe{config: _q.config}
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
	if query := _q.withAuthor; query != nil {
		if err := _q.loadAuthor(ctx, query, nodes, nil,
			func(n *Recipe, e *User) { n.Edges.Author = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecipeIngredients; query != nil {
		if err := _q.loadRecipeIngredients(ctx, query, nodes,
			func(n *Recipe) { n.Edges.RecipeIngredients = []*RecipeIngredient{} },
			func(n *Recipe, e *RecipeIngredient) { n.Edges.RecipeIngredients = append(n.Edges.RecipeIngredients, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFavoritedBy; query != nil {
		if err := _q.loadFavoritedBy(ctx, query, nodes,
			func(n *Recipe) { n.Edges.FavoritedBy = []*Favorite{} },
			func(n *Recipe, e *Favorite) { n.Edges.FavoritedBy = append(n.Edges.FavoritedBy, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withInCarts; query != nil {
		if err := _q.loadInCarts(ctx, query, nodes,
			func(n *Recipe) { n.Edges.InCarts = []*CartItem{} },
			func(n *Recipe, e *CartItem) { n.Edges.InCarts = append(n.Edges.InCarts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecipeQuery) loadAuthor(ctx context.Context, query *UserQuery, nodes []*Recipe, init func(*Recipe), assign func(*Recipe, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Recipe)
	for i := range nodes {
		fk := nodes[i].AuthorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "author_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecipeQuery) loadRecipeIngredients(ctx context.Context, query *RecipeIngredientQuery, nodes []*Recipe, init func(*Recipe), assign func(*Recipe, *RecipeIngredient)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Recipe)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recipeingredient.FieldRecipeID)
	}
	query.Where(predicate.RecipeIngredient(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recipe.RecipeIngredientsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecipeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recipe_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RecipeQuery) loadFavoritedBy(ctx context.Context, query *FavoriteQuery, nodes []*Recipe, init func(*Recipe), assign func(*Recipe, *Favorite)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Recipe)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(favorite.FieldRecipeID)
	}
	query.Where(predicate.Favorite(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recipe.FavoritedByColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecipeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recipe_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RecipeQuery) loadInCarts(ctx context.Context, query *CartItemQuery, nodes []*Recipe, init func(*Recipe), assign func(*Recipe, *CartItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Recipe)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(cartitem.FieldRecipeID)
	}
	query.Where(predicate.CartItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recipe.InCartsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecipeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recipe_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RecipeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecipeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recipe.Table, recipe.Columns, sqlgraph.NewFieldSpec(recipe.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipe.FieldID)
		for i := range fields {
			if fields[i] != recipe.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAuthor != nil {
			_spec.Node.AddColumnOnce(recipe.FieldAuthorID)
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

func (_q *RecipeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recipe.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recipe.Columns
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

// RecipeGroupBy is the group-by builder for Recipe entities.
type RecipeGroupBy struct {
	selector
	build *RecipeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecipeGroupBy) Aggregate(fns ...AggregateFunc) *RecipeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecipeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecipeQuery, *RecipeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecipeGroupBy) sqlScan(ctx context.Context, root *RecipeQuery, v any) error {
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

// RecipeSelect is the builder for selecting fields of Recipe entities.
type RecipeSelect struct {
	*RecipeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecipeSelect) Aggregate(fns ...AggregateFunc) *RecipeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecipeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecipeQuery, *RecipeSelect](ctx, _s.RecipeQuery, _s, _s.inters, v)
}

func (_s *RecipeSelect) sqlScan(ctx context.Context, root *RecipeQuery, v any) error {
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
