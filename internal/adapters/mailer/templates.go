package mailer

import (
	ht "html/template"
	tt "text/template"
)

const layoutHTML = `<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #3b82f6, #06b6d4); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
      .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
      .code-box { background: white; border: 2px dashed #3b82f6; border-radius: 8px; padding: 20px; text-align: center; margin: 20px 0; word-break: break-all; }
      .code { font-size: 24px; font-weight: bold; color: #3b82f6; letter-spacing: 2px; font-family: monospace; }
      .footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
    </style>
  </head>
  <body>
    <div class="header"><h1>{{template "title"}}</h1></div>
    <div class="content">
      <p>Hello{{if .Name}} {{.Name}}{{end}},</p>
      {{template "intro"}}
      <div class="code-box"><div class="code">{{.Code}}</div></div>
      <p><strong>This code will expire in {{.Expiry}}.</strong></p>
      {{template "outro"}}
      <div class="footer"><p>&copy; {{.Year}} Currency Converter. All rights reserved.</p></div>
    </div>
  </body>
</html>`

var otpHTML = ht.Must(ht.Must(ht.New("otp").Parse(layoutHTML)).Parse(`
{{define "title"}}Email Verification{{end}}
{{define "intro"}}<p>Thank you for registering with Currency Converter! To complete your registration, please use the following One-Time Password (OTP):</p>{{end}}
{{define "outro"}}<p>If you didn't request this code, please ignore this email.</p>{{end}}
`))

var resetHTML = ht.Must(ht.Must(ht.New("reset").Parse(layoutHTML)).Parse(`
{{define "title"}}Password Reset Request{{end}}
{{define "intro"}}<p>We received a request to reset your password. Use the following reset token:</p>{{end}}
{{define "outro"}}<p>If you didn't request this password reset, please ignore this email and your password will remain unchanged.</p>{{end}}
`))

var otpText = tt.Must(tt.New("otp").Parse(
	"Hello{{if .Name}} {{.Name}}{{end}},\n\nYour OTP code is: {{.Code}}\n\nThis code will expire in {{.Expiry}}.\n\n" +
		"If you didn't request this code, please ignore this email."))

var resetText = tt.Must(tt.New("reset").Parse(
	"Hello{{if .Name}} {{.Name}}{{end}},\n\nYour password reset token is: {{.Code}}\n\nThis token will expire in {{.Expiry}}.\n\n" +
		"If you didn't request this password reset, please ignore this email."))
