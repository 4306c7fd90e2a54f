package feed

import (
	"fmt"

	"bundle-importer/feature/bundle/models"
)

// Convert validates feed records and turns them into the candidate object
// graph. Store-view title references are resolved from 1-based option
// indices to the option instances of the same product.
func Convert(records []ProductRecord) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(records))
	for _, record := range records {
		product, err := convertProduct(record)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func convertProduct(record ProductRecord) (*models.Product, error) {
	if record.ProductID <= 0 {
		return nil, fmt.Errorf("feed record without a valid product_id (%d)", record.ProductID)
	}

	product := &models.Product{ID: record.ProductID}

	if record.Options != nil {
		product.Options = make([]*models.Option, 0, len(record.Options))
		for i, optionRecord := range record.Options {
			option, err := convertOption(record.ProductID, i, optionRecord)
			if err != nil {
				return nil, err
			}
			product.Options = append(product.Options, option)
		}
	}

	for _, viewRecord := range record.StoreViews {
		storeView := models.StoreView{StoreID: viewRecord.StoreID}
		for _, titleRecord := range viewRecord.Titles {
			if titleRecord.Option < 1 || titleRecord.Option > len(product.Options) {
				return nil, fmt.Errorf("product %d: store view %d title %q references option %d, product has %d",
					record.ProductID, viewRecord.StoreID, titleRecord.Title, titleRecord.Option, len(product.Options))
			}
			storeView.OptionTitles = append(storeView.OptionTitles, models.OptionTitle{
				Option: product.Options[titleRecord.Option-1],
				Title:  titleRecord.Title,
			})
		}
		product.StoreViews = append(product.StoreViews, storeView)
	}

	return product, nil
}

func convertOption(productID int64, index int, record OptionRecord) (*models.Option, error) {
	inputType := models.InputType(record.InputType)
	if !inputType.Valid() {
		return nil, fmt.Errorf("product %d: option %d has unknown input type %q", productID, index+1, record.InputType)
	}

	option := &models.Option{
		Required:  record.Required,
		InputType: inputType,
	}

	for j, selectionRecord := range record.Selections {
		if selectionRecord.MemberProductID <= 0 {
			return nil, fmt.Errorf("product %d: option %d selection %d without a valid member_product_id",
				productID, index+1, j+1)
		}
		priceType := models.PriceType(selectionRecord.PriceType)
		if !priceType.Valid() {
			return nil, fmt.Errorf("product %d: option %d selection %d has unknown price type %q",
				productID, index+1, j+1, selectionRecord.PriceType)
		}
		option.Selections = append(option.Selections, models.Selection{
			MemberProductID:   selectionRecord.MemberProductID,
			IsDefault:         selectionRecord.IsDefault,
			PriceType:         priceType,
			PriceValue:        selectionRecord.PriceValue,
			Quantity:          selectionRecord.Quantity,
			CanChangeQuantity: selectionRecord.CanChangeQuantity,
		})
	}

	return option, nil
}
