package usecase

const otpEmailSubject = "Your GoalNet verification code"

const otpEmailBody = `<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f6f8;font-family:Arial,Helvetica,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr>
      <td align="center" style="padding:32px 16px;">
        <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;">
          <tr>
            <td style="background-color:#1a73e8;padding:20px 32px;">
              <span style="color:#ffffff;font-size:20px;font-weight:bold;">{{.company_name}}</span>
            </td>
          </tr>
          <tr>
            <td style="padding:32px;">
              <p style="margin:0 0 16px;color:#202124;font-size:15px;">Use this code to sign in to your account:</p>
              <p style="margin:0 0 16px;text-align:center;">
                <span style="display:inline-block;padding:12px 32px;background-color:#f1f3f4;border-radius:6px;color:#1a73e8;font-size:28px;font-weight:bold;letter-spacing:8px;">{{.code}}</span>
              </p>
              <p style="margin:0 0 8px;color:#5f6368;font-size:13px;">This code expires in {{.expires_minutes}} minutes.</p>
              <p style="margin:0;color:#5f6368;font-size:13px;">If you did not request it, you can safely ignore this email.</p>
            </td>
          </tr>
          <tr>
            <td style="padding:16px 32px;background-color:#f8f9fa;">
              <p style="margin:0;color:#80868b;font-size:12px;">&copy; {{.year}} {{.company_name}}</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
