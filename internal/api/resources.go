package api

import (
	"context"
	"fmt"

	"github.com/me/shopadmin/pkg/model"
)

// Resource paths on the platform API.
const (
	PathProducts     = "/api/products"
	PathCategories   = "/api/categories"
	PathOrders       = "/api/orders"
	PathShipping     = "/api/shipping"
	PathDiscounts    = "/api/discounts"
	PathTransactions = "/api/transactions"
	PathPlans        = "/api/plans"
	PathMembers      = "/api/members"
	PathToys         = "/api/toys"
	PathCourses      = "/api/courses"
)

// listResource fetches a collection and maps every raw record through
// the resource's normalizer. Partial records are defaulted by the
// normalizer, never rejected.
func listResource[R, T any](ctx context.Context, c *Client, token TokenSource, path string, norm func(R) T) ([]T, error) {
	var raws []R
	if err := c.GetInto(ctx, token, path, &raws); err != nil {
		return nil, err
	}
	out := make([]T, len(raws))
	for i, r := range raws {
		out[i] = norm(r)
	}
	return out, nil
}

// getResource fetches a single record by id and normalizes it.
func getResource[R, T any](ctx context.Context, c *Client, token TokenSource, path, id string, norm func(R) T) (T, error) {
	var raw R
	var zero T
	if err := c.GetInto(ctx, token, path+"/"+id, &raw); err != nil {
		return zero, err
	}
	return norm(raw), nil
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context, token TokenSource) ([]model.Product, error) {
	return listResource(ctx, c, token, PathProducts, model.NormalizeProduct)
}

func (c *Client) GetProduct(ctx context.Context, token TokenSource, id string) (model.Product, error) {
	return getResource(ctx, c, token, PathProducts, id, model.NormalizeProduct)
}

func (c *Client) CreateProduct(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathProducts, payload)
	return err
}

func (c *Client) UpdateProduct(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathProducts+"/"+id, payload)
	return err
}

func (c *Client) DeleteProduct(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathProducts+"/"+id)
	return err
}

// UpdateProductStock sets the stock count via the admin stock sub-route.
func (c *Client) UpdateProductStock(ctx context.Context, token TokenSource, id string, stock int) error {
	path := fmt.Sprintf("%s/admin/%s/stock", PathProducts, id)
	_, err := c.Patch(ctx, token, path, map[string]int{"countInStock": stock})
	return err
}

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context, token TokenSource) ([]model.Category, error) {
	return listResource(ctx, c, token, PathCategories, model.NormalizeCategory)
}

func (c *Client) CreateCategory(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathCategories, payload)
	return err
}

func (c *Client) UpdateCategory(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathCategories+"/"+id, payload)
	return err
}

func (c *Client) DeleteCategory(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathCategories+"/"+id)
	return err
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context, token TokenSource) ([]model.Order, error) {
	return listResource(ctx, c, token, PathOrders, model.NormalizeOrder)
}

func (c *Client) GetOrder(ctx context.Context, token TokenSource, id string) (model.Order, error) {
	return getResource(ctx, c, token, PathOrders, id, model.NormalizeOrder)
}

// UpdateOrderStatus moves an order to a new status via the status
// sub-route. The API owns transition validation.
func (c *Client) UpdateOrderStatus(ctx context.Context, token TokenSource, id string, status model.Status) error {
	path := fmt.Sprintf("%s/%s/status", PathOrders, id)
	_, err := c.Put(ctx, token, path, map[string]string{"status": status.String()})
	return err
}

func (c *Client) DeleteOrder(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathOrders+"/"+id)
	return err
}

// --- Shipping zones ---

func (c *Client) ListShippingZones(ctx context.Context, token TokenSource) ([]model.ShippingZone, error) {
	return listResource(ctx, c, token, PathShipping, model.NormalizeShippingZone)
}

func (c *Client) CreateShippingZone(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathShipping, payload)
	return err
}

func (c *Client) UpdateShippingZone(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathShipping+"/"+id, payload)
	return err
}

func (c *Client) DeleteShippingZone(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathShipping+"/"+id)
	return err
}

// --- Discounts ---

func (c *Client) ListDiscounts(ctx context.Context, token TokenSource) ([]model.Discount, error) {
	return listResource(ctx, c, token, PathDiscounts, model.NormalizeDiscount)
}

func (c *Client) CreateDiscount(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathDiscounts, payload)
	return err
}

func (c *Client) UpdateDiscount(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathDiscounts+"/"+id, payload)
	return err
}

func (c *Client) DeleteDiscount(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathDiscounts+"/"+id)
	return err
}

// --- Transactions ---

func (c *Client) ListTransactions(ctx context.Context, token TokenSource) ([]model.Transaction, error) {
	return listResource(ctx, c, token, PathTransactions, model.NormalizeTransaction)
}

// --- Plans ---

func (c *Client) ListPlans(ctx context.Context, token TokenSource) ([]model.Plan, error) {
	return listResource(ctx, c, token, PathPlans, model.NormalizePlan)
}

func (c *Client) CreatePlan(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathPlans, payload)
	return err
}

func (c *Client) UpdatePlan(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathPlans+"/"+id, payload)
	return err
}

func (c *Client) DeletePlan(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathPlans+"/"+id)
	return err
}

// --- Members ---

func (c *Client) ListMembers(ctx context.Context, token TokenSource) ([]model.Member, error) {
	return listResource(ctx, c, token, PathMembers, model.NormalizeMember)
}

func (c *Client) DeleteMember(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathMembers+"/"+id)
	return err
}

// SendRenewalEmail triggers the renewal reminder email for a member.
func (c *Client) SendRenewalEmail(ctx context.Context, token TokenSource, memberID string) error {
	_, err := c.Post(ctx, token, "/api/emails/send-renewal/"+memberID, nil)
	return err
}

// --- Toys ---

func (c *Client) ListToys(ctx context.Context, token TokenSource) ([]model.Toy, error) {
	return listResource(ctx, c, token, PathToys, model.NormalizeToy)
}

func (c *Client) GetToy(ctx context.Context, token TokenSource, id string) (model.Toy, error) {
	return getResource(ctx, c, token, PathToys, id, model.NormalizeToy)
}

func (c *Client) CreateToy(ctx context.Context, token TokenSource, payload any) error {
	_, err := c.Post(ctx, token, PathToys, payload)
	return err
}

func (c *Client) UpdateToy(ctx context.Context, token TokenSource, id string, payload any) error {
	_, err := c.Put(ctx, token, PathToys+"/"+id, payload)
	return err
}

func (c *Client) DeleteToy(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathToys+"/"+id)
	return err
}

// UpdateToyAvailableUnits adjusts how many units of a toy are out on
// loan via the available-units sub-route.
func (c *Client) UpdateToyAvailableUnits(ctx context.Context, token TokenSource, id string, units int) error {
	path := fmt.Sprintf("%s/%s/available-units", PathToys, id)
	_, err := c.Patch(ctx, token, path, map[string]int{"availableUnits": units})
	return err
}

// --- Courses ---

func (c *Client) ListCourses(ctx context.Context, token TokenSource) ([]model.Course, error) {
	return listResource(ctx, c, token, PathCourses, model.NormalizeCourse)
}

func (c *Client) DeleteCourse(ctx context.Context, token TokenSource, id string) error {
	_, err := c.Delete(ctx, token, PathCourses+"/"+id)
	return err
}
