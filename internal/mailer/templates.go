package mailer

import (
	"fmt"
	"sort"
	"strings"

	"shoestore/internal/model"
)

// variantSummary renders a variant selection as "Size: US 9 • Color:
// Black", sorted by variant name so the output is stable.
func variantSummary(variants map[string]string) string {
	if len(variants) == 0 {
		return ""
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, variants[name])
	}
	return strings.Join(parts, " &bull; ")
}

// buildConfirmationHTML renders the approved-order email: order summary,
// shipping address, total and a link to the thank-you page.
func buildConfirmationHTML(order *model.Order, baseURL string) string {
	detailsLink := fmt.Sprintf("%s/thank-you?orderNumber=%s", baseURL, order.OrderNumber)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: 'Segoe UI', Tahoma, sans-serif; color: #333; background-color: #f8fafc; }
    .container { max-width: 600px; margin: 40px auto; background: white; border-radius: 12px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; text-align: center; padding: 32px; }
    .content { padding: 32px; }
    .order-card { background: #f7fafc; border-left: 4px solid #667eea; border-radius: 8px; padding: 20px; margin: 20px 0; }
    .total { font-size: 22px; font-weight: 700; color: #48bb78; }
    .shipping { background: #edf2f7; border-radius: 8px; padding: 20px; margin: 20px 0; }
    .button { display: inline-block; background: #667eea; color: white; text-decoration: none; padding: 14px 28px; border-radius: 8px; }
    .footer { text-align: center; padding: 24px; background: #f7fafc; color: #718096; font-size: 13px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Confirmed!</h1>
      <p>Your order has been successfully placed</p>
    </div>
    <div class="content">
      <p>Hi <strong>%s</strong>,</p>
      <p>Thank you for choosing ShoeStore! Your order is confirmed and we're getting your shoes ready for shipment.</p>
      <div class="order-card">
        <p><strong>Order #%s</strong></p>
        <p>%s</p>
        <p>Quantity: %d%s</p>
        <p class="total">$%.2f</p>
      </div>
      <div class="shipping">
        <p><strong>Shipping Address</strong></p>
        <p>%s<br>%s<br>%s, %s %s</p>
      </div>
      <center><a href="%s" class="button">View Order Details</a></center>
    </div>
    <div class="footer">
      <p><strong>ShoeStore</strong> - Step into Style</p>
    </div>
  </div>
</body>
</html>`,
		order.Customer.FullName,
		order.OrderNumber,
		order.Product.Name,
		order.Product.Quantity,
		prefixedVariants(order.Product.Variants),
		order.Total,
		order.Customer.FullName,
		order.Customer.Address,
		order.Customer.City,
		order.Customer.State,
		order.Customer.ZipCode,
		detailsLink,
	)
}

// buildFailureHTML renders the payment failure email. The issue line
// distinguishes a declined card from a gateway error.
func buildFailureHTML(order *model.Order, baseURL string) string {
	issue := "Payment gateway error"
	if order.Payment.Status == model.PaymentDeclined {
		issue = "Card was declined"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: 'Segoe UI', Tahoma, sans-serif; color: #333; background-color: #f8fafc; }
    .container { max-width: 600px; margin: 40px auto; background: white; border-radius: 12px; overflow: hidden; }
    .header { background: linear-gradient(135deg, #f56565 0%%, #e53e3e 100%%); color: white; text-align: center; padding: 32px; }
    .content { padding: 32px; }
    .error-card { background: #fed7d7; border-left: 4px solid #f56565; border-radius: 8px; padding: 20px; margin: 20px 0; }
    .button { display: inline-block; background: #3182ce; color: white; text-decoration: none; padding: 14px 28px; border-radius: 8px; }
    .footer { text-align: center; padding: 24px; background: #f7fafc; color: #718096; font-size: 13px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Payment Failed</h1>
      <p>There was an issue processing your payment</p>
    </div>
    <div class="content">
      <p>Hi <strong>%s</strong>,</p>
      <p>We couldn't process your payment for order #%s.</p>
      <div class="error-card">
        <strong>Product:</strong> %s<br>
        <strong>Total:</strong> $%.2f<br>
        <strong>Issue:</strong> %s
      </div>
      <p>Please check your payment details and try again.</p>
      <center><a href="%s" class="button">Try Again</a></center>
    </div>
    <div class="footer">
      <p><strong>ShoeStore</strong> - Step into Style</p>
    </div>
  </div>
</body>
</html>`,
		order.Customer.FullName,
		order.OrderNumber,
		order.Product.Name,
		order.Total,
		issue,
		baseURL,
	)
}

// prefixedVariants renders " • Size: US 9 • Color: Black", or an empty
// string when the order has no variant selections.
func prefixedVariants(variants map[string]string) string {
	summary := variantSummary(variants)
	if summary == "" {
		return ""
	}
	return " &bull; " + summary
}
