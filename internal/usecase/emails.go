package usecase

import (
	"fmt"
	"html"
	"strings"

	"github.com/polkiloo/scentshop/internal/adapter/mail"
	"github.com/polkiloo/scentshop/internal/domain/model"
)

func verificationEmail(baseURL, to, name, token string) mail.Message {
	link := fmt.Sprintf("%s/api/auth/verify?token=%s", strings.TrimRight(baseURL, "/"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to ScentShop. Please confirm your email address:</p><p><a href=%q>Verify email</a></p><p>The link expires in 24 hours.</p>",
		html.EscapeString(name), link)
	return mail.Message{To: to, Subject: "Verify your email", HTMLBody: body}
}

func resetEmail(baseURL, to, name, token string) mail.Message {
	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(baseURL, "/"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received a request to reset your password:</p><p><a href=%q>Reset password</a></p><p>The link expires in 1 hour. If you did not request this, ignore this email.</p>",
		html.EscapeString(name), link)
	return mail.Message{To: to, Subject: "Reset your password", HTMLBody: body}
}

func orderConfirmationEmail(to, name string, order *model.Order) mail.Message {
	var lines strings.Builder
	for _, item := range order.Items {
		lines.WriteString(fmt.Sprintf("<li>%s × %d — ₹%s</li>",
			html.EscapeString(item.ProductName), item.Quantity, item.Subtotal().StringFixed(2)))
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Payment received for order #%d.</p><ul>%s</ul><p>Total: ₹%s</p><p>We will let you know when it ships.</p>",
		html.EscapeString(name), order.ID, lines.String(), order.TotalAmount.StringFixed(2))
	return mail.Message{To: to, Subject: fmt.Sprintf("Order #%d confirmed", order.ID), HTMLBody: body}
}
