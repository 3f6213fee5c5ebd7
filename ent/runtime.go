// Code generated by ent, DO NOT EDIT.

package ent

import (
	"foodgram-api/ent/cartitem"
	"foodgram-api/ent/favorite"
	"foodgram-api/ent/ingredient"
	"foodgram-api/ent/recipe"
	"foodgram-api/ent/recipeingredient"
	"foodgram-api/ent/schema"
	"foodgram-api/ent/subscription"
	"foodgram-api/ent/user"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cartitemFields := schema.CartItem{}.Fields()
	_ = cartitemFields
	// cartitemDescCreatedAt is the schema descriptor for created_at field.
	cartitemDescCreatedAt := cartitemFields[2].Descriptor()
	// cartitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	cartitem.DefaultCreatedAt = cartitemDescCreatedAt.Default.(func() time.Time)
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteFields[2].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	ingredientFields := schema.Ingredient{}.Fields()
	_ = ingredientFields
	// ingredientDescName is the schema descriptor for name field.
	ingredientDescName := ingredientFields[0].Descriptor()
	// ingredient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	ingredient.NameValidator = func() func(string) error {
		validators := ingredientDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ingredientDescMeasurementUnit is the schema descriptor for measurement_unit field.
	ingredientDescMeasurementUnit := ingredientFields[1].Descriptor()
	// ingredient.MeasurementUnitValidator is a validator for the "measurement_unit" field. It is called by the builders before save.
	ingredient.MeasurementUnitValidator = func() func(string) error {
		validators := ingredientDescMeasurementUnit.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(measurement_unit string) error {
			for _, fn := range fns {
				if err := fn(measurement_unit); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	recipeFields := schema.Recipe{}.Fields()
	_ = recipeFields
	// recipeDescName is the schema descriptor for name field.
	recipeDescName := recipeFields[1].Descriptor()
	// recipe.NameValidator is a validator for the "name" field. It is called by the builders before save.
	recipe.NameValidator = func() func(string) error {
		validators := recipeDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// recipeDescImage is the schema descriptor for image field.
	recipeDescImage := recipeFields[2].Descriptor()
	// recipe.DefaultImage holds the default value on creation for the image field.
	recipe.DefaultImage = recipeDescImage.Default.(string)
	// recipeDescText is the schema descriptor for text field.
	recipeDescText := recipeFields[3].Descriptor()
	// recipe.DefaultText holds the default value on creation for the text field.
	recipe.DefaultText = recipeDescText.Default.(string)
	// recipeDescCookingTime is the schema descriptor for cooking_time field.
	recipeDescCookingTime := recipeFields[4].Descriptor()
	// recipe.CookingTimeValidator is a validator for the "cooking_time" field. It is called by the builders before save.
	recipe.CookingTimeValidator = recipeDescCookingTime.Validators[0].(func(int) error)
	// recipeDescPubDate is the schema descriptor for pub_date field.
	recipeDescPubDate := recipeFields[5].Descriptor()
	// recipe.DefaultPubDate holds the default value on creation for the pub_date field.
	recipe.DefaultPubDate = recipeDescPubDate.Default.(func() time.Time)
	// recipeDescShortLink is the schema descriptor for short_link field.
	recipeDescShortLink := recipeFields[6].Descriptor()
	// recipe.ShortLinkValidator is a validator for the "short_link" field. It is called by the builders before save.
	recipe.ShortLinkValidator = recipeDescShortLink.Validators[0].(func(string) error)
	recipeingredientFields := schema.RecipeIngredient{}.Fields()
	_ = recipeingredientFields
	// recipeingredientDescAmount is the schema descriptor for amount field.
	recipeingredientDescAmount := recipeingredientFields[2].Descriptor()
	// recipeingredient.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	recipeingredient.AmountValidator = recipeingredientDescAmount.Validators[0].(func(int) error)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[2].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.DefaultFirstName holds the default value on creation for the first_name field.
	user.DefaultFirstName = userDescFirstName.Default.(string)
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.DefaultLastName holds the default value on creation for the last_name field.
	user.DefaultLastName = userDescLastName.Default.(string)
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescAvatar is the schema descriptor for avatar field.
	userDescAvatar := userFields[4].Descriptor()
	// user.DefaultAvatar holds the default value on creation for the avatar field.
	user.DefaultAvatar = userDescAvatar.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
