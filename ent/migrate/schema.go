// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CartItemsColumns holds the columns for the "cart_items" table.
	CartItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipe_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CartItemsTable holds the schema information for the "cart_items" table.
	CartItemsTable = &schema.Table{
		Name:       "cart_items",
		Columns:    CartItemsColumns,
		PrimaryKey: []*schema.Column{CartItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cart_items_recipes_in_carts",
				Columns:    []*schema.Column{CartItemsColumns[2]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "cart_items_users_cart_items",
				Columns:    []*schema.Column{CartItemsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cartitem_user_id_recipe_id",
				Unique:  true,
				Columns: []*schema.Column{CartItemsColumns[3], CartItemsColumns[2]},
			},
		},
	}
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipe_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "favorites_recipes_favorited_by",
				Columns:    []*schema.Column{FavoritesColumns[2]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "favorites_users_favorites",
				Columns:    []*schema.Column{FavoritesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_user_id_recipe_id",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[3], FavoritesColumns[2]},
			},
		},
	}
	// IngredientsColumns holds the columns for the "ingredients" table.
	IngredientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 128},
		{Name: "measurement_unit", Type: field.TypeString, Size: 64},
	}
	// IngredientsTable holds the schema information for the "ingredients" table.
	IngredientsTable = &schema.Table{
		Name:       "ingredients",
		Columns:    IngredientsColumns,
		PrimaryKey: []*schema.Column{IngredientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingredient_name",
				Unique:  false,
				Columns: []*schema.Column{IngredientsColumns[1]},
			},
		},
	}
	// RecipesColumns holds the columns for the "recipes" table.
	RecipesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 256},
		{Name: "image", Type: field.TypeString, Default: ""},
		{Name: "text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "cooking_time", Type: field.TypeInt},
		{Name: "pub_date", Type: field.TypeTime},
		{Name: "short_link", Type: field.TypeString, Unique: true, Size: 8},
		{Name: "author_id", Type: field.TypeInt},
	}
	// RecipesTable holds the schema information for the "recipes" table.
	RecipesTable = &schema.Table{
		Name:       "recipes",
		Columns:    RecipesColumns,
		PrimaryKey: []*schema.Column{RecipesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recipes_users_recipes",
				Columns:    []*schema.Column{RecipesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RecipeIngredientsColumns holds the columns for the "recipe_ingredients" table.
	RecipeIngredientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "amount", Type: field.TypeInt},
		{Name: "ingredient_id", Type: field.TypeInt},
		{Name: "recipe_id", Type: field.TypeInt},
	}
	// RecipeIngredientsTable holds the schema information for the "recipe_ingredients" table.
	RecipeIngredientsTable = &schema.Table{
		Name:       "recipe_ingredients",
		Columns:    RecipeIngredientsColumns,
		PrimaryKey: []*schema.Column{RecipeIngredientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recipe_ingredients_ingredients_recipe_ingredients",
				Columns:    []*schema.Column{RecipeIngredientsColumns[2]},
				RefColumns: []*schema.Column{IngredientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "recipe_ingredients_recipes_recipe_ingredients",
				Columns:    []*schema.Column{RecipeIngredientsColumns[3]},
				RefColumns: []*schema.Column{RecipesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recipeingredient_recipe_id_ingredient_id",
				Unique:  true,
				Columns: []*schema.Column{RecipeIngredientsColumns[3], RecipeIngredientsColumns[2]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender_id", Type: field.TypeInt},
		{Name: "target_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "subscriptions_users_subscribers",
				Columns:    []*schema.Column{SubscriptionsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_sender_id_target_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[2], SubscriptionsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 254},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "first_name", Type: field.TypeString, Size: 150, Default: ""},
		{Name: "last_name", Type: field.TypeString, Size: 150, Default: ""},
		{Name: "avatar", Type: field.TypeString, Default: ""},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CartItemsTable,
		FavoritesTable,
		IngredientsTable,
		RecipesTable,
		RecipeIngredientsTable,
		SubscriptionsTable,
		UsersTable,
	}
)

func init() {
	CartItemsTable.ForeignKeys[0].RefTable = RecipesTable
	CartItemsTable.ForeignKeys[1].RefTable = UsersTable
	FavoritesTable.ForeignKeys[0].RefTable = RecipesTable
	FavoritesTable.ForeignKeys[1].RefTable = UsersTable
	RecipesTable.ForeignKeys[0].RefTable = UsersTable
	RecipeIngredientsTable.ForeignKeys[0].RefTable = IngredientsTable
	RecipeIngredientsTable.ForeignKeys[1].RefTable = RecipesTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[1].RefTable = UsersTable
}
